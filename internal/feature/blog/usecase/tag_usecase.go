package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"portal_backend/internal/feature/blog/domain"
	"portal_backend/internal/feature/blog/domain/entity"
)

// TagRepository abstracts the persistence layer for tags.
type TagRepository interface {
	List(ctx context.Context) ([]entity.Tag, error)
	// FindByID returns ErrTagNotFound when no tag matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)
	// FindByIDs returns the tags for the given IDs; a missing ID yields
	// ErrTagNotFound.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Tag, error)
	// Create returns ErrDuplicateName on a normalized-name collision.
	Create(ctx context.Context, tag *entity.Tag) error
	// Update returns ErrDuplicateName on a normalized-name collision.
	Update(ctx context.Context, tag *entity.Tag) error
	// Delete returns ErrTagNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateTagInput carries the fields for a new tag.
type CreateTagInput struct {
	Name        string
	Description *string
}

// UpdateTagInput carries a partial update; nil fields stay unchanged.
type UpdateTagInput struct {
	Name        *string
	Description *string
}

// TagUsecase provides business logic for tag operations.
type TagUsecase struct {
	repo TagRepository
}

// NewTagUsecase creates a new TagUsecase with the given repository.
func NewTagUsecase(r TagRepository) *TagUsecase {
	return &TagUsecase{repo: r}
}

// List returns all tags.
func (u *TagUsecase) List(ctx context.Context) ([]entity.Tag, error) {
	return u.repo.List(ctx)
}

// Get returns the tag with the given ID.
func (u *TagUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	return u.repo.FindByID(ctx, id)
}

// Create adds a tag.
func (u *TagUsecase) Create(ctx context.Context, in CreateTagInput) (*entity.Tag, error) {
	name := strings.TrimSpace(in.Name)
	tag := &entity.Tag{
		Name:           name,
		NormalizedName: domain.NormalizeName(name),
		Description:    in.Description,
	}
	if err := u.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Update applies a partial update to the tag.
func (u *TagUsecase) Update(ctx context.Context, id uuid.UUID, in UpdateTagInput) (*entity.Tag, error) {
	tag, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		tag.Name = name
		tag.NormalizedName = domain.NormalizeName(name)
	}
	if in.Description != nil {
		tag.Description = in.Description
	}

	if err := u.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes the tag.
func (u *TagUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
