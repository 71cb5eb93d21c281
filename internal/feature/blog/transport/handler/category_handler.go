// Package handler provides the HTTP handlers for the blog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portal_backend/internal/feature/blog/domain/entity"
	"portal_backend/internal/feature/blog/transport/http/dto"
	"portal_backend/internal/feature/blog/usecase"
)

// CategoryUsecase defines the use cases for category operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CategoryUsecase interface {
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, in usecase.CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, in usecase.UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns all categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get returns a single category by ID.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "category not found"})
			return
		}
		slog.Error("failed to get category", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Create adds a category.
// - 400 on validation failure
// - 409 when the normalized name collides with an existing category
// - 422 on any other creation failure
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateName) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "category already exists"})
			return
		}
		slog.Error("failed to create category", "error", err)
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "cannot create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// Update applies a partial update to a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CategoryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "category not found"})
		case errors.Is(err, usecase.ErrDuplicateName):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "category already exists"})
		default:
			slog.Error("failed to update category", "error", err, "id", id)
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "cannot update category"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "category not found"})
			return
		}
		slog.Error("failed to delete category", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id route parameter as a UUID, responding 400 itself
// when it is malformed.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
