package dto

import (
	"time"

	"github.com/google/uuid"

	"portal_backend/internal/feature/blog/domain/entity"
)

// ErrorResponse is the uniform error body for the blog service.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TagRef is a tag reference embedded in post responses.
type TagRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PostItem is a post in API responses, with the category flattened to its
// display name.
type PostItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Category  *string   `json:"category"`
	Tags      []TagRef  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPostItem converts a post entity to its API shape.
func NewPostItem(p entity.Post) PostItem {
	item := PostItem{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Published: p.Published,
		Tags:      make([]TagRef, 0, len(p.Tags)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Category != nil {
		item.Category = &p.Category.Name
	}
	for _, t := range p.Tags {
		item.Tags = append(item.Tags, TagRef{ID: t.ID, Name: t.Name})
	}
	return item
}
