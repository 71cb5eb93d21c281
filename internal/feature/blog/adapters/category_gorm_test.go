package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal_backend/internal/feature/blog/domain"
	"portal_backend/internal/feature/blog/domain/entity"
	"portal_backend/internal/feature/blog/usecase"
)

// setupTestDB opens an in-memory SQLite database with the same error
// translation the production connection uses. Foreign keys are switched on
// so referential-integrity failures behave as they do on PostgreSQL; the
// database is named per test so pooled connections share it without
// leaking state across tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Category{}, &entity.Tag{}, &entity.Post{}))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	c := &entity.Category{
		Name:           name,
		NormalizedName: domain.NormalizeName(name),
		Slug:           "slug-" + uuid.NewString(),
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCategoryRepository_Create(t *testing.T) {
	t.Run("persists and assigns an ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCategoryRepository(db)

		c := &entity.Category{Name: "Tech", NormalizedName: "tech", Slug: "tech"}
		require.NoError(t, repo.Create(context.Background(), c))
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	t.Run("colliding normalized name maps to ErrDuplicateName", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCategoryRepository(db)
		seedCategory(t, db, "Tech News")

		// "TECH NEWS" normalizes to the same value as "Tech News".
		err := repo.Create(context.Background(), &entity.Category{
			Name:           "TECH NEWS",
			NormalizedName: domain.NormalizeName("TECH NEWS"),
			Slug:           "tech-news-2",
		})
		assert.ErrorIs(t, err, usecase.ErrDuplicateName)
	})
}

func TestCategoryRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	seeded := seedCategory(t, db, "Tech")

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tech", got.Name)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrCategoryNotFound)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	seeded := seedCategory(t, db, "Tech")
	other := seedCategory(t, db, "Science")

	t.Run("persists changed fields", func(t *testing.T) {
		seeded.Name = "Technology"
		seeded.NormalizedName = domain.NormalizeName("Technology")
		require.NoError(t, repo.Update(context.Background(), seeded))

		got, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Technology", got.Name)
	})

	t.Run("renaming onto another category maps to ErrDuplicateName", func(t *testing.T) {
		other.NormalizedName = domain.NormalizeName("Technology")
		err := repo.Update(context.Background(), other)
		assert.ErrorIs(t, err, usecase.ErrDuplicateName)
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	seeded := seedCategory(t, db, "Tech")

	t.Run("deletes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(context.Background(), seeded.ID))
		_, err := repo.FindByID(context.Background(), seeded.ID)
		assert.ErrorIs(t, err, usecase.ErrCategoryNotFound)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		err := repo.Delete(context.Background(), seeded.ID)
		assert.ErrorIs(t, err, usecase.ErrCategoryNotFound)
	})
}
