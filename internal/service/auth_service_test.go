package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bunnypost/internal/auth"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
)

func TestAuthService_SignUp(t *testing.T) {
	input := SignUpInput{
		Email:     "bunny@example.com",
		Username:  "bunny",
		Password:  "password123",
		FirstName: "Bunny",
		LastName:  "Hopper",
	}

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful sign-up",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrUsername", mock.Anything, "bunny@example.com", "bunny").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already taken",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrUsername", mock.Anything, "bunny@example.com", "bunny").Return(&model.User{Email: "bunny@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
		{
			name: "username already taken",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrUsername", mock.Anything, "bunny@example.com", "bunny").Return(&model.User{Username: "bunny"}, nil)
			},
			expectedError: apperrors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, token, err := service.SignUp(context.Background(), input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, input.Email, user.Email)
				assert.Equal(t, input.Username, user.Username)
				// Never store the plaintext password.
				assert.NotEqual(t, input.Password, user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful sign-in",
			email:    "bunny@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "bunny@example.com").Return(&model.User{
					Email:    "bunny@example.com",
					Password: string(hashed),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "user not found",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "bunny@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "bunny@example.com").Return(&model.User{
					Email:    "bunny@example.com",
					Password: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, token, err := service.SignIn(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
