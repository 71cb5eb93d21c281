package dto

import "portal_backend/internal/feature/auth/domain/entity"

// ErrorResponse is the uniform error body for the auth service.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse acknowledges a successful registration or login.
// The access token itself travels in the session cookie, not the body.
type LoginResponse struct {
	Login bool `json:"login"`
}

// CreateResourceReq represents the request body for POST /api/resources.
type CreateResourceReq struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ResourceItem is a single resource in API responses.
type ResourceItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ResourceListData groups the owner display name with the owned resources.
type ResourceListData struct {
	Owner     string         `json:"owner"`
	Resources []ResourceItem `json:"resources"`
}

// ResourceListResponse is the body of GET /api/resources.
type ResourceListResponse struct {
	Data ResourceListData `json:"data"`
}

// ResourceResponse is the body of POST /api/resources.
type ResourceResponse struct {
	Data ResourceItem `json:"data"`
}

// NewResourceItem converts a resource entity to its API shape.
func NewResourceItem(r entity.Resource) ResourceItem {
	return ResourceItem{ID: r.ID, Name: r.Name}
}
