package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal_backend/internal/feature/blog/domain/entity"
	"portal_backend/internal/feature/blog/usecase"
)

// postGorm is the PostgreSQL implementation of the PostRepository interface.
type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostRepository creates a postGorm backed by the given connection.
func NewPostRepository(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// List returns all posts with category and tags loaded, newest first.
func (r *postGorm) List(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID retrieves a post with category and tags loaded.
func (r *postGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and its tag-association rows. The tag rows
// themselves are never written here; the usecase resolved them already.
func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	if err := r.db.WithContext(ctx).
		Omit("Tags.*").
		Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// Update saves the post's scalar fields and replaces the tag associations
// with the ones carried by the entity, atomically.
func (r *postGorm) Update(ctx context.Context, post *entity.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Category").Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(post.Tags)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// Delete removes the post together with its tag-association rows.
func (r *postGorm) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&entity.Post{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
