package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bunnypost/internal/auth"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
	"bunnypost/internal/repository"
)

// PostService exposes post operations.
type PostService interface {
	List(ctx context.Context, search string, page, limit int) ([]model.Post, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, authorID uuid.UUID, title, content string) (*model.Post, error)
	Update(ctx context.Context, actingID, id uuid.UUID, title, content *string) (*model.Post, error)
	Delete(ctx context.Context, actingID, id uuid.UUID) error
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

// List returns one page of posts plus the global filtered count. An empty
// page is a not-found outcome.
func (s *postService) List(ctx context.Context, search string, page, limit int) ([]model.Post, int64, error) {
	posts, total, err := s.posts.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, 0, apperrors.ErrNoPostsFound
	}
	return posts, total, nil
}

// Get returns a post with author, comments and likes eagerly loaded.
func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.posts.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// Create inserts a post after confirming the authoring user exists. The
// author is always the verified token identity.
func (s *postService) Create(ctx context.Context, authorID uuid.UUID, title, content string) (*model.Post, error) {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update applies new title/content to an existing post. Existence is checked
// before ownership so a missing post is never reported as forbidden.
func (s *postService) Update(ctx context.Context, actingID, id uuid.UUID, title, content *string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if !auth.IsOwner(actingID, post.AuthorID) {
		return nil, apperrors.ErrUpdatePostForbidden
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes a post owned by the acting user.
func (s *postService) Delete(ctx context.Context, actingID, id uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if !auth.IsOwner(actingID, post.AuthorID) {
		return apperrors.ErrDeletePostForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
