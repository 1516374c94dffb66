package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
	"bunnypost/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, input service.SignUpInput) (*model.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func signUpForm() url.Values {
	return url.Values{
		"email":     {"bunny@example.com"},
		"username":  {"bunny"},
		"password":  {"password123"},
		"firstName": {"Bunny"},
		"lastName":  {"Hopper"},
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("returns 201 with token", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("SignUp", mock.Anything, mock.AnythingOfType("service.SignUpInput")).
			Return(&model.User{Username: "bunny"}, "signed-token", nil)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(formRequest(http.MethodPost, "/api/auth/signup", signUpForm()), rec)

		err := NewAuthHandler(mockAuth).SignUp(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp Envelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "User created successfully", resp.Message)
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("duplicate user returns 409", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("SignUp", mock.Anything, mock.AnythingOfType("service.SignUpInput")).
			Return(nil, "", apperrors.ErrUserExists)

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(formRequest(http.MethodPost, "/api/auth/signup", signUpForm()), rec)

		err := NewAuthHandler(mockAuth).SignUp(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp Envelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "User already exists", resp.Message)
	})

	t.Run("invalid input returns 400 with field errors", func(t *testing.T) {
		form := signUpForm()
		form.Del("email")
		form.Set("password", "short")

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(formRequest(http.MethodPost, "/api/auth/signup", form), rec)

		mockAuth := new(MockAuthService)
		err := NewAuthHandler(mockAuth).SignUp(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Success bool         `json:"success"`
			Message string       `json:"message"`
			Errors  []FieldError `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid input", resp.Message)
		assert.Len(t, resp.Errors, 2)
		mockAuth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	form := url.Values{
		"email":    {"bunny@example.com"},
		"password": {"password123"},
	}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{name: "success", serviceErr: nil, expectedStatus: http.StatusOK, expectedMsg: "SignIn successful"},
		{name: "unknown email", serviceErr: apperrors.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
		{name: "wrong password", serviceErr: apperrors.ErrInvalidPassword, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(MockAuthService)
			if tt.serviceErr != nil {
				mockAuth.On("SignIn", mock.Anything, "bunny@example.com", "password123").Return(nil, "", tt.serviceErr)
			} else {
				mockAuth.On("SignIn", mock.Anything, "bunny@example.com", "password123").
					Return(&model.User{Email: "bunny@example.com"}, "signed-token", nil)
			}

			e := newTestEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(formRequest(http.MethodPost, "/api/auth/signin", form), rec)

			err := NewAuthHandler(mockAuth).SignIn(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp Envelope
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
			if tt.serviceErr == nil {
				assert.True(t, resp.Success)
				assert.Equal(t, "signed-token", resp.Token)
			} else {
				assert.False(t, resp.Success)
				assert.Empty(t, resp.Token)
			}
		})
	}
}
