package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bunnypost/internal/cache"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
)

// nil *cache.Client behaves as an always-empty cache, so tests exercise the
// repository path without a redis instance.
var noCache *cache.Client

func TestUserService_Search(t *testing.T) {
	t.Run("empty page is a not-found outcome", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("Search", mock.Anything, "zz", 1, 10).Return([]model.User{}, int64(0), nil)

		service := NewUserService(mockUsers, new(MockUploader), noCache)
		users, total, err := service.Search(context.Background(), "zz", 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrNoUsersFound)
		assert.Nil(t, users)
		assert.Zero(t, total)
	})

	t.Run("returns page and global count", func(t *testing.T) {
		page := []model.User{{Username: "bunny"}}
		mockUsers := new(MockUserRepository)
		mockUsers.On("Search", mock.Anything, "bun", 2, 5).Return(page, int64(12), nil)

		service := NewUserService(mockUsers, new(MockUploader), noCache)
		users, total, err := service.Search(context.Background(), "bun", 2, 5)

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, int64(12), total)
	})
}

func TestUserService_Me_NotFound(t *testing.T) {
	id := uuid.New()
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByIDWithRelations", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewUserService(mockUsers, new(MockUploader), noCache)
	user, err := service.Me(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_GetByUsername(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByUsername", mock.Anything, "bunny").Return(&model.User{Username: "bunny"}, nil)

	service := NewUserService(mockUsers, new(MockUploader), noCache)
	user, err := service.GetByUsername(context.Background(), "bunny")

	assert.NoError(t, err)
	assert.Equal(t, "bunny", user.Username)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	newBio := "Updated bio"

	t.Run("missing user is not found, not forbidden", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUsers, new(MockUploader), noCache)
		user, err := service.UpdateProfile(context.Background(), strangerID, ownerID, UpdateProfileInput{Bio: &newBio})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("non-owner is forbidden before any upload", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUploader := new(MockUploader)
		mockUsers.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID}, nil)

		service := NewUserService(mockUsers, mockUploader, noCache)
		user, err := service.UpdateProfile(context.Background(), strangerID, ownerID, UpdateProfileInput{
			Bio:            &newBio,
			ProfilePicture: "data:image/png;base64,AAAA",
		})

		assert.ErrorIs(t, err, apperrors.ErrUpdateUserForbidden)
		assert.Nil(t, user)
		mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
		mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("failed upload aborts before persisting", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUploader := new(MockUploader)
		mockUsers.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID, Bio: "Old bio"}, nil)
		mockUploader.On("Upload", mock.Anything, "picture-source").Return("https://cdn.example.com/p.png", nil)
		mockUploader.On("Upload", mock.Anything, "header-source").Return("", errors.New("provider down"))

		service := NewUserService(mockUsers, mockUploader, noCache)
		user, err := service.UpdateProfile(context.Background(), ownerID, ownerID, UpdateProfileInput{
			Bio:            &newBio,
			ProfilePicture: "picture-source",
			Header:         "header-source",
		})

		assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner update applies fields and upload URLs", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUploader := new(MockUploader)
		mockUsers.On("FindByID", mock.Anything, ownerID).Return(&model.User{ID: ownerID, Username: "bunny", FirstName: "Bunny"}, nil)
		mockUploader.On("Upload", mock.Anything, "picture-source").Return("https://cdn.example.com/p.png", nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockUsers, mockUploader, noCache)
		user, err := service.UpdateProfile(context.Background(), ownerID, ownerID, UpdateProfileInput{
			Bio:            &newBio,
			ProfilePicture: "picture-source",
		})

		assert.NoError(t, err)
		assert.Equal(t, newBio, user.Bio)
		assert.Equal(t, "https://cdn.example.com/p.png", user.ProfilePictureURL)
		// Untouched fields keep their stored values.
		assert.Equal(t, "Bunny", user.FirstName)
		mockUsers.AssertExpectations(t)
	})
}
