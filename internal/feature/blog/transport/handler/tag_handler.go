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

// TagUsecase defines the use cases for tag operations.
type TagUsecase interface {
	List(ctx context.Context) ([]entity.Tag, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Tag, error)
	Create(ctx context.Context, in usecase.CreateTagInput) (*entity.Tag, error)
	Update(ctx context.Context, id uuid.UUID, in usecase.UpdateTagInput) (*entity.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagHandler handles HTTP requests for tag operations.
type TagHandler struct {
	tags TagUsecase
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tags TagUsecase) *TagHandler {
	return &TagHandler{tags: tags}
}

// List returns all tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list tags", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// Get returns a single tag by ID.
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tag, err := h.tags.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tag not found"})
			return
		}
		slog.Error("failed to get tag", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// Create adds a tag.
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), usecase.CreateTagInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateName) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "tag already exists"})
			return
		}
		slog.Error("failed to create tag", "error", err)
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "cannot create tag"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

// Update applies a partial update to a tag.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.TagUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), id, usecase.UpdateTagInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTagNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tag not found"})
		case errors.Is(err, usecase.ErrDuplicateName):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "tag already exists"})
		default:
			slog.Error("failed to update tag", "error", err, "id", id)
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "cannot update tag"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// Delete removes a tag. A tag still attached to posts is not deleted.
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTagNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tag not found"})
		case errors.Is(err, usecase.ErrTagInUse):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "tag is in use"})
		default:
			slog.Error("failed to delete tag", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
