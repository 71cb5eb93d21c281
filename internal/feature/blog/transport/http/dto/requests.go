// Package dto defines data transfer objects for the blog feature's HTTP
// transport layer.
package dto

import "github.com/google/uuid"

// CategoryReq represents the request body for creating a category.
type CategoryReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

// CategoryUpdateReq represents a partial category update.
// Omitted fields are left unchanged.
type CategoryUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// TagReq represents the request body for creating a tag.
type TagReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

// TagUpdateReq represents a partial tag update.
type TagUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// PostReq represents the request body for creating a post.
type PostReq struct {
	Title      string      `json:"title" binding:"required,max=255"`
	Content    string      `json:"content" binding:"required"`
	Published  bool        `json:"published"`
	CategoryID *uuid.UUID  `json:"categoryId"`
	TagIDs     []uuid.UUID `json:"tagIds"`
}

// PostUpdateReq represents a partial post update. Omitted fields are left
// unchanged; a provided tag list replaces the existing associations.
type PostUpdateReq struct {
	Title      *string      `json:"title" binding:"omitempty,min=1,max=255"`
	Content    *string      `json:"content" binding:"omitempty,min=1"`
	Published  *bool        `json:"published"`
	CategoryID *uuid.UUID   `json:"categoryId"`
	TagIDs     *[]uuid.UUID `json:"tagIds"`
}
