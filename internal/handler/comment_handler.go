package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bunnypost/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentCreateRequest represents a comment creation form. AuthorID is
// accepted for schema compatibility but ignored in favor of the token
// identity.
type CommentCreateRequest struct {
	Content  string `form:"content" json:"content" validate:"required"`
	PostID   string `form:"postId" json:"postId" validate:"required,uuid"`
	AuthorID string `form:"authorId" json:"authorId" validate:"omitempty"`
}

// Create godoc
// @Summary Comment on a post
// @Tags comments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param content formData string true "Content"
// @Param postId formData string true "Post ID"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	var req CommentCreateRequest
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

	comment, err := h.commentService.Create(c.Request().Context(), actingID, postID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Comment created successfully",
		Data:    comment,
	})
}

// Delete godoc
// @Summary Delete an owned comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Comment ID is required"))
	}

	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	if err := h.commentService.Delete(c.Request().Context(), actingID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Comment deleted successfully",
	})
}
