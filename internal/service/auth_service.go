package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bunnypost/internal/auth"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
	"bunnypost/internal/repository"
)

const bcryptCost = 10

// SignUpInput carries the validated sign-up fields.
type SignUpInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// AuthService handles sign-up and sign-in.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*model.User, string, error)
	SignIn(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// SignUp registers a new user after checking that neither the email nor the
// username is taken, and returns the stored user plus a fresh token.
func (s *authService) SignUp(ctx context.Context, input SignUpInput) (*model.User, string, error) {
	existing, err := s.users.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:     input.Email,
		Username:  input.Username,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// SignIn authenticates a user by email and password. A missing user and a
// wrong password are reported as distinct outcomes.
func (s *authService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}
