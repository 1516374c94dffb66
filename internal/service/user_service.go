package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bunnypost/internal/auth"
	"bunnypost/internal/cache"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
	"bunnypost/internal/repository"
	"bunnypost/internal/upload"
)

const profileCacheTTL = 5 * time.Minute

// UpdateProfileInput carries the optional profile fields. Nil pointers leave
// the stored value untouched. ProfilePicture and Header are upload sources,
// not URLs; they are sent to the hosting provider first.
type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	Bio            *string
	ProfilePicture string
	Header         string
}

// UserService exposes profile operations.
type UserService interface {
	Me(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Search(ctx context.Context, query string, page, limit int) ([]model.User, int64, error)
	UpdateProfile(ctx context.Context, actingID, targetID uuid.UUID, input UpdateProfileInput) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	uploader upload.Uploader
	cache    *cache.Client
}

// NewUserService builds a UserService with repository, uploader and cache.
func NewUserService(users repository.UserRepository, uploader upload.Uploader, cache *cache.Client) UserService {
	return &userService{users: users, uploader: uploader, cache: cache}
}

func (s *userService) cacheKey(username string) string {
	return fmt.Sprintf("user:profile:%s", username)
}

// Me returns the acting user's full profile with posts, comments and likes.
func (s *userService) Me(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// GetByUsername returns a public profile, read through the cache.
func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(username)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(username), payload, profileCacheTTL)
	}
	return user, nil
}

// Search returns one page of matching users and the global filtered count.
// An empty page is a not-found outcome, matching the list endpoints' policy.
func (s *userService) Search(ctx context.Context, query string, page, limit int) ([]model.User, int64, error) {
	users, total, err := s.users.Search(ctx, query, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("search users: %w", err)
	}
	if len(users) == 0 {
		return nil, 0, apperrors.ErrNoUsersFound
	}
	return users, total, nil
}

// UpdateProfile edits a user's own profile. Image sources are uploaded to
// the hosting provider before anything persists: if either upload fails the
// stored record is left unchanged.
func (s *userService) UpdateProfile(ctx context.Context, actingID, targetID uuid.UUID, input UpdateProfileInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.IsOwner(actingID, user.ID) {
		return nil, apperrors.ErrUpdateUserForbidden
	}

	var profilePictureURL, headerURL string
	if input.ProfilePicture != "" {
		profilePictureURL, err = s.uploader.Upload(ctx, input.ProfilePicture)
		if err != nil {
			return nil, apperrors.ErrUploadFailed
		}
	}
	if input.Header != "" {
		headerURL, err = s.uploader.Upload(ctx, input.Header)
		if err != nil {
			return nil, apperrors.ErrUploadFailed
		}
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if profilePictureURL != "" {
		user.ProfilePictureURL = profilePictureURL
	}
	if headerURL != "" {
		user.HeaderURL = headerURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.Username))
	return user, nil
}
