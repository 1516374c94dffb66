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

// LikeService exposes like operations.
type LikeService interface {
	Create(ctx context.Context, authorID, postID uuid.UUID) (*model.Like, error)
	Delete(ctx context.Context, actingID, id uuid.UUID) error
}

type likeService struct {
	likes repository.LikeRepository
	posts repository.PostRepository
	users repository.UserRepository
}

// NewLikeService creates a new like service.
func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, users repository.UserRepository) LikeService {
	return &likeService{likes: likes, posts: posts, users: users}
}

// Create inserts a like after confirming the authoring user and target post
// exist. There is no duplicate check: liking the same post twice yields two
// rows.
func (s *likeService) Create(ctx context.Context, authorID, postID uuid.UUID) (*model.Like, error) {
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

	like := &model.Like{
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return nil, fmt.Errorf("create like: %w", err)
	}
	return like, nil
}

// Delete removes a like owned by the acting user.
func (s *likeService) Delete(ctx context.Context, actingID, id uuid.UUID) error {
	like, err := s.likes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLikeNotFound
		}
		return fmt.Errorf("find like: %w", err)
	}

	if !auth.IsOwner(actingID, like.AuthorID) {
		return apperrors.ErrDeleteLikeForbidden
	}

	if err := s.likes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
