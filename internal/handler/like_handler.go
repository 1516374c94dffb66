package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bunnypost/internal/service"
)

// LikeHandler handles like endpoints.
type LikeHandler struct {
	likeService service.LikeService
}

// NewLikeHandler creates a new like handler.
func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// LikeCreateRequest represents a like creation form. AuthorID is accepted
// for schema compatibility but ignored in favor of the token identity.
type LikeCreateRequest struct {
	PostID   string `form:"postId" json:"postId" validate:"required,uuid"`
	AuthorID string `form:"authorId" json:"authorId" validate:"omitempty"`
}

// Create godoc
// @Summary Like a post
// @Tags likes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param postId formData string true "Post ID"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /likes [post]
func (h *LikeHandler) Create(c echo.Context) error {
	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	var req LikeCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}

	like, err := h.likeService.Create(c.Request().Context(), actingID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    like,
	})
}

// Delete godoc
// @Summary Remove an owned like
// @Tags likes
// @Produce json
// @Param id path string true "Like ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /likes/{id} [delete]
func (h *LikeHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Like ID is required"))
	}

	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	if err := h.likeService.Delete(c.Request().Context(), actingID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Like deleted successfully",
	})
}
