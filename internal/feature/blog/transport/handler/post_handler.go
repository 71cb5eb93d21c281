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

// PostUsecase defines the use cases for post operations.
type PostUsecase interface {
	List(ctx context.Context) ([]entity.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Create(ctx context.Context, in usecase.CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id uuid.UUID, in usecase.UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// List returns all posts with their category and tags.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	items := make([]dto.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.NewPostItem(p))
	}
	c.JSON(http.StatusOK, gin.H{"posts": items})
}

// Get returns a single post by ID.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "post not found"})
			return
		}
		slog.Error("failed to get post", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": dto.NewPostItem(*post)})
}

// Create adds a post.
// - 400 on validation failure
// - 404 when the referenced category or a tag does not exist
// - 409 when the normalized title collides with an existing post
// - 422 on any other creation failure
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), usecase.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Published:  req.Published,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		h.writePostError(c, err, "cannot create post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": dto.NewPostItem(*post)})
}

// Update applies a partial update to a post.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PostUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), id, usecase.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Published:  req.Published,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		h.writePostError(c, err, "cannot update post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": dto.NewPostItem(*post)})
}

// Delete removes a post.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "post not found"})
			return
		}
		slog.Error("failed to delete post", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// writePostError maps usecase errors from post create/update to responses.
func (h *PostHandler) writePostError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "post not found"})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "category not found"})
	case errors.Is(err, usecase.ErrTagNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tag not found"})
	case errors.Is(err, usecase.ErrDuplicateTitle):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "post already exists"})
	default:
		slog.Error("post operation failed", "error", err)
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: fallback})
	}
}
