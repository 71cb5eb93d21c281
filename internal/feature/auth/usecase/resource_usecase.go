package usecase

import (
	"context"
	"strings"

	"portal_backend/internal/feature/auth/domain/entity"
)

// ResourceRepository abstracts the persistence layer for owned resources.
type ResourceRepository interface {
	ListByOwner(ctx context.Context, userID uint) ([]entity.Resource, error)
	Create(ctx context.Context, resource *entity.Resource) error
}

// ResourceUsecase provides business logic for user-owned resources.
type ResourceUsecase struct {
	repo ResourceRepository
}

// NewResourceUsecase creates a new ResourceUsecase with the given repository.
func NewResourceUsecase(r ResourceRepository) *ResourceUsecase {
	return &ResourceUsecase{repo: r}
}

// ListOwned returns all resources belonging to the user.
func (u *ResourceUsecase) ListOwned(ctx context.Context, userID uint) ([]entity.Resource, error) {
	return u.repo.ListByOwner(ctx, userID)
}

// CreateOwned creates a resource owned by the user.
func (u *ResourceUsecase) CreateOwned(ctx context.Context, userID uint, name string) (*entity.Resource, error) {
	resource := &entity.Resource{Name: strings.TrimSpace(name), UserID: userID}
	if err := u.repo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}
