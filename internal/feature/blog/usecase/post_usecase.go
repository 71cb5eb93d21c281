package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"portal_backend/internal/feature/blog/domain"
	"portal_backend/internal/feature/blog/domain/entity"
)

// PostRepository abstracts the persistence layer for posts.
type PostRepository interface {
	// List returns all posts with their category and tags loaded.
	List(ctx context.Context) ([]entity.Post, error)
	// FindByID returns ErrPostNotFound when no post matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	// Create returns ErrDuplicateTitle on a normalized-title or slug collision.
	Create(ctx context.Context, post *entity.Post) error
	// Update persists the post and replaces its tag associations.
	// It returns ErrDuplicateTitle on a normalized-title or slug collision.
	Update(ctx context.Context, post *entity.Post) error
	// Delete returns ErrPostNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Title      string
	Content    string
	Published  bool
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
}

// UpdatePostInput carries a partial update; nil fields stay unchanged.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Published  *bool
	CategoryID *uuid.UUID
	TagIDs     *[]uuid.UUID
}

// PostUsecase provides business logic for post operations. It validates
// category and tag references through their repositories before touching
// the post store.
type PostUsecase struct {
	posts      PostRepository
	categories CategoryRepository
	tags       TagRepository
}

// NewPostUsecase creates a new PostUsecase with the given repositories.
func NewPostUsecase(posts PostRepository, categories CategoryRepository, tags TagRepository) *PostUsecase {
	return &PostUsecase{posts: posts, categories: categories, tags: tags}
}

// List returns all posts.
func (u *PostUsecase) List(ctx context.Context) ([]entity.Post, error) {
	return u.posts.List(ctx)
}

// Get returns the post with the given ID.
func (u *PostUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// Create adds a post. An unknown category or tag reference fails the
// operation before anything is persisted.
func (u *PostUsecase) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	if in.CategoryID != nil {
		if _, err := u.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	tags, err := u.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	post := &entity.Post{
		Title:           title,
		NormalizedTitle: domain.NormalizeName(title),
		Slug:            slug.Make(title),
		Content:         in.Content,
		Published:       in.Published,
		CategoryID:      in.CategoryID,
		Tags:            tags,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return u.posts.FindByID(ctx, post.ID)
}

// Update applies a partial update to the post. Retitling recomputes the
// normalized title and slug; a provided tag list replaces the existing one.
func (u *PostUsecase) Update(ctx context.Context, id uuid.UUID, in UpdatePostInput) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := u.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		post.Title = title
		post.NormalizedTitle = domain.NormalizeName(title)
		post.Slug = slug.Make(title)
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.TagIDs != nil {
		tags, err := u.resolveTags(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if err := u.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return u.posts.FindByID(ctx, id)
}

// Delete removes the post and its tag associations.
func (u *PostUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.posts.Delete(ctx, id)
}

// resolveTags loads the referenced tags, failing on any unknown ID.
func (u *PostUsecase) resolveTags(ctx context.Context, ids []uuid.UUID) ([]entity.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return u.tags.FindByIDs(ctx, ids)
}
