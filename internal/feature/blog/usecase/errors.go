// Package usecase implements the business logic for the blog feature.
package usecase

import "errors"

var (
	// ErrCategoryNotFound is returned when no category matches the given ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPostNotFound is returned when no post matches the given ID.
	ErrPostNotFound = errors.New("post not found")

	// ErrTagNotFound is returned when no tag matches the given ID.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateName is returned when a category or tag with the same
	// normalized name already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrDuplicateTitle is returned when a post with the same normalized
	// title already exists.
	ErrDuplicateTitle = errors.New("title already exists")

	// ErrTagInUse is returned when a tag cannot be deleted because posts
	// still reference it.
	ErrTagInUse = errors.New("tag is in use")
)
