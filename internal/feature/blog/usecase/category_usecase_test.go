package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal_backend/internal/feature/blog/domain/entity"
)

// mockCategoryRepository is a mock implementation of the CategoryRepository
// interface.
type mockCategoryRepository struct {
	ListFunc     func(ctx context.Context) ([]entity.Category, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateFunc   func(ctx context.Context, category *entity.Category) error
	UpdateFunc   func(ctx context.Context, category *entity.Category) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return m.ListFunc(ctx)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.CreateFunc(ctx, category)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.UpdateFunc(ctx, category)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func strPtr(s string) *string { return &s }

func TestCategoryUsecase_Create(t *testing.T) {
	t.Run("derives normalized name and slug", func(t *testing.T) {
		var created *entity.Category
		mockRepo := &mockCategoryRepository{
			CreateFunc: func(ctx context.Context, category *entity.Category) error {
				created = category
				category.ID = uuid.New()
				return nil
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		got, err := uc.Create(context.Background(), CreateCategoryInput{
			Name:        "  Tech News  ",
			Description: strPtr("all things tech"),
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "Tech News", created.Name)
		assert.Equal(t, "tech news", created.NormalizedName)
		assert.Equal(t, "tech-news", created.Slug)
		require.NotNil(t, created.Description)
		assert.Equal(t, "all things tech", *created.Description)
		assert.Equal(t, created, got)
	})

	t.Run("duplicate name surfaces unchanged", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{
			CreateFunc: func(ctx context.Context, category *entity.Category) error {
				return ErrDuplicateName
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		_, err := uc.Create(context.Background(), CreateCategoryInput{Name: "Tech News"})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestCategoryUsecase_Update(t *testing.T) {
	existingID := uuid.New()
	existing := func() *entity.Category {
		return &entity.Category{
			ID:             existingID,
			Name:           "Tech News",
			NormalizedName: "tech news",
			Slug:           "tech-news",
			Description:    strPtr("old description"),
		}
	}

	t.Run("renaming recomputes normalized name and slug", func(t *testing.T) {
		var updated *entity.Category
		mockRepo := &mockCategoryRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
				assert.Equal(t, existingID, id)
				return existing(), nil
			},
			UpdateFunc: func(ctx context.Context, category *entity.Category) error {
				updated = category
				return nil
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		_, err := uc.Update(context.Background(), existingID, UpdateCategoryInput{
			Name: strPtr("Science & Nature"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Science & Nature", updated.Name)
		assert.Equal(t, "science & nature", updated.NormalizedName)
		assert.Equal(t, "science-and-nature", updated.Slug)
		// The untouched field survives the partial update.
		assert.Equal(t, "old description", *updated.Description)
	})

	t.Run("nil fields leave the category unchanged", func(t *testing.T) {
		var updated *entity.Category
		mockRepo := &mockCategoryRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
				return existing(), nil
			},
			UpdateFunc: func(ctx context.Context, category *entity.Category) error {
				updated = category
				return nil
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		_, err := uc.Update(context.Background(), existingID, UpdateCategoryInput{})
		require.NoError(t, err)
		assert.Equal(t, existing(), updated)
	})

	t.Run("unknown category", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
				return nil, ErrCategoryNotFound
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		_, err := uc.Update(context.Background(), uuid.New(), UpdateCategoryInput{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryUsecase_Delete(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				return ErrCategoryNotFound
			},
		}
		uc := NewCategoryUsecase(mockRepo)

		err := uc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
