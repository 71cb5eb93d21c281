package adapters

import (
	"context"

	"gorm.io/gorm"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

// resourceGorm is the PostgreSQL implementation of the ResourceRepository
// interface.
type resourceGorm struct {
	db *gorm.DB
}

var _ usecase.ResourceRepository = (*resourceGorm)(nil)

// NewResourceRepository creates a resourceGorm backed by the given connection.
func NewResourceRepository(db *gorm.DB) *resourceGorm {
	return &resourceGorm{db: db}
}

// ListByOwner returns all resources owned by the user, oldest first.
func (r *resourceGorm) ListByOwner(ctx context.Context, userID uint) ([]entity.Resource, error) {
	var resources []entity.Resource
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Create inserts the resource.
func (r *resourceGorm) Create(ctx context.Context, resource *entity.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}
