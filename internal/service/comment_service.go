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

// CommentService exposes comment operations.
type CommentService interface {
	Create(ctx context.Context, authorID, postID uuid.UUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, actingID, id uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) CommentService {
	return &commentService{comments: comments, posts: posts, users: users}
}

// Create inserts a comment after confirming both the authoring user and the
// target post exist. Nothing is persisted when either reference dangles.
func (s *commentService) Create(ctx context.Context, authorID, postID uuid.UUID, content string) (*model.Comment, error) {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	comment := &model.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment owned by the acting user.
func (s *commentService) Delete(ctx context.Context, actingID, id uuid.UUID) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}

	if !auth.IsOwner(actingID, comment.AuthorID) {
		return apperrors.ErrDeleteCommentForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
