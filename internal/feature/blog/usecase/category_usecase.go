package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"portal_backend/internal/feature/blog/domain"
	"portal_backend/internal/feature/blog/domain/entity"
)

// CategoryRepository abstracts the persistence layer for categories.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	// FindByID returns ErrCategoryNotFound when no category matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// Create returns ErrDuplicateName on a normalized-name or slug collision.
	Create(ctx context.Context, category *entity.Category) error
	// Update returns ErrDuplicateName on a normalized-name or slug collision.
	Update(ctx context.Context, category *entity.Category) error
	// Delete returns ErrCategoryNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string
	Description *string
}

// UpdateCategoryInput carries a partial update; nil fields stay unchanged.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryUsecase provides business logic for category operations.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a new CategoryUsecase with the given repository.
func NewCategoryUsecase(r CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: r}
}

// List returns all categories.
func (u *CategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// Get returns the category with the given ID.
func (u *CategoryUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return u.repo.FindByID(ctx, id)
}

// Create adds a category. The normalized name and slug are derived from the
// display name at creation.
func (u *CategoryUsecase) Create(ctx context.Context, in CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	category := &entity.Category{
		Name:           name,
		NormalizedName: domain.NormalizeName(name),
		Slug:           slug.Make(name),
		Description:    in.Description,
	}
	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies a partial update to the category. Renaming recomputes the
// normalized name and slug.
func (u *CategoryUsecase) Update(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*entity.Category, error) {
	category, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		category.Name = name
		category.NormalizedName = domain.NormalizeName(name)
		category.Slug = slug.Make(name)
	}
	if in.Description != nil {
		category.Description = in.Description
	}

	if err := u.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Posts referencing it are detached by the
// database, not deleted.
func (u *CategoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
