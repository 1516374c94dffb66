package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bunnypost/internal/service"
)

// AuthHandler handles sign-up and sign-in endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents a sign-up form.
type SignUpRequest struct {
	Email     string `form:"email" json:"email" validate:"required,email"`
	Username  string `form:"username" json:"username" validate:"required"`
	Password  string `form:"password" json:"password" validate:"required,min=8"`
	FirstName string `form:"firstName" json:"firstName" validate:"required"`
	LastName  string `form:"lastName" json:"lastName" validate:"required"`
}

// SignInRequest represents a sign-in form.
type SignInRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

// SignUp godoc
// @Summary Create a new account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password (min 8 chars)"
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	_, token, err := h.authService.SignUp(c.Request().Context(), service.SignUpInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "User created successfully",
		Token:   token,
	})
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	_, token, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "SignIn successful",
		Token:   token,
	})
}
