package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bunnypost/internal/service"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a profile update form. ProfilePicture and
// Header carry upload sources, not URLs.
type UpdateProfileRequest struct {
	FirstName      *string `form:"firstName" json:"firstName" validate:"omitempty,min=1"`
	LastName       *string `form:"lastName" json:"lastName" validate:"omitempty,min=1"`
	Bio            *string `form:"bio" json:"bio"`
	ProfilePicture string  `form:"profilePicture" json:"profilePicture"`
	Header         string  `form:"header" json:"header"`
}

// List godoc
// @Summary Search users
// @Tags users
// @Produce json
// @Param search query string false "Case-insensitive match on username, first or last name"
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	users, total, err := h.userService.Search(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Users fetched successfully",
		Data:    newUserSummaries(users),
		Pagination: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(users),
			TotalPages: totalPages(total, limit),
		},
	})
}

// Me godoc
// @Summary Get the acting user's full profile
// @Tags users
// @Produce json
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	user, err := h.userService.Me(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Users fetched successfully",
		Data:    user,
	})
}

// GetByUsername godoc
// @Summary Get a public profile by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /users/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.userService.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "User fetched successfully",
		Data:    user,
	})
}

// Update godoc
// @Summary Update the acting user's own profile
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "User ID"
// @Param firstName formData string false "First name"
// @Param lastName formData string false "Last name"
// @Param bio formData string false "Bio"
// @Param profilePicture formData string false "Profile picture upload source"
// @Param header formData string false "Header upload source"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid user ID"))
	}

	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), actingID, targetID, service.UpdateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		Header:         req.Header,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}
