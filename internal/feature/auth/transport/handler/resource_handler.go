package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/transport/http/dto"
	"portal_backend/internal/feature/auth/transport/middleware"
)

// ResourceUsecase defines the use cases for user-owned resources.
type ResourceUsecase interface {
	ListOwned(ctx context.Context, userID uint) ([]entity.Resource, error)
	CreateOwned(ctx context.Context, userID uint, name string) (*entity.Resource, error)
}

// ResourceHandler handles HTTP requests for user-owned resources.
// All routes require the session middleware to have resolved a user.
type ResourceHandler struct {
	resources ResourceUsecase
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resources ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// List returns the authenticated user's resources with the owner's
// display name.
func (h *ResourceHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	resources, err := h.resources.ListOwned(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list resources", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}

	items := make([]dto.ResourceItem, 0, len(resources))
	for _, r := range resources {
		items = append(items, dto.NewResourceItem(r))
	}
	c.JSON(http.StatusOK, dto.ResourceListResponse{
		Data: dto.ResourceListData{Owner: user.FullName(), Resources: items},
	})
}

// Create adds a resource owned by the authenticated user.
func (h *ResourceHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create resource validation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	resource, err := h.resources.CreateOwned(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		slog.Error("failed to create resource", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.ResourceResponse{Data: dto.NewResourceItem(*resource)})
}
