package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal_backend/internal/feature/blog/domain/entity"
	"portal_backend/internal/feature/blog/usecase"
)

// tagGorm is the PostgreSQL implementation of the TagRepository interface.
type tagGorm struct {
	db *gorm.DB
}

var _ usecase.TagRepository = (*tagGorm)(nil)

// NewTagRepository creates a tagGorm backed by the given connection.
func NewTagRepository(db *gorm.DB) *tagGorm {
	return &tagGorm{db: db}
}

// List returns all tags, newest first.
func (r *tagGorm) List(ctx context.Context) ([]entity.Tag, error) {
	var tags []entity.Tag
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByID retrieves a tag by ID.
func (r *tagGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tag entity.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindByIDs returns the tags for the given IDs. Any ID without a matching
// tag fails the whole lookup.
func (r *tagGorm) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Tag, error) {
	var tags []entity.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(tags))
	for _, t := range tags {
		found[t.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, usecase.ErrTagNotFound
		}
	}
	return tags, nil
}

// Create inserts the tag, mapping name collisions to ErrDuplicateName.
func (r *tagGorm) Create(ctx context.Context, tag *entity.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateName
		}
		return err
	}
	return nil
}

// Update saves all fields of the tag.
func (r *tagGorm) Update(ctx context.Context, tag *entity.Tag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateName
		}
		return err
	}
	return nil
}

// Delete removes the tag. A tag still attached to posts is kept; the
// foreign-key violation maps to ErrTagInUse.
func (r *tagGorm) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Tag{})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return usecase.ErrTagInUse
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTagNotFound
	}
	return nil
}
