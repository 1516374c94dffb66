package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bunnypost/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostCreateRequest represents a post creation form. AuthorID is accepted
// for schema compatibility but ignored: the author is the token identity.
type PostCreateRequest struct {
	Title    string `form:"title" json:"title" validate:"required"`
	Content  string `form:"content" json:"content" validate:"required"`
	AuthorID string `form:"authorId" json:"authorId" validate:"omitempty"`
}

// PostUpdateRequest represents a post update form; absent fields keep their
// stored values.
type PostUpdateRequest struct {
	Title   *string `form:"title" json:"title" validate:"omitempty,min=1"`
	Content *string `form:"content" json:"content" validate:"omitempty,min=1"`
}

// List godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param search query string false "Case-insensitive match on title or content"
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	posts, total, err := h.postService.List(c.Request().Context(), c.QueryParam("search"), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Posts fetched successfully",
		Data:    newPostViews(posts),
		Pagination: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(posts),
			TotalPages: totalPages(total, limit),
		},
	})
}

// Get godoc
// @Summary Get a post with author, comments and likes
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Post ID is required"))
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Post fetched successfully",
		Data:    newPostView(*post),
	})
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	var req PostCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	post, err := h.postService.Create(c.Request().Context(), actingID, req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Post created successfully",
		Data:    post,
	})
}

// Update godoc
// @Summary Update an owned post
// @Tags posts
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "Post ID"
// @Param title formData string false "Title"
// @Param content formData string false "Content"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Post ID is required"))
	}

	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	var req PostUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid input"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	post, err := h.postService.Update(c.Request().Context(), actingID, id, req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Post updated successfully",
		Data:    post,
	})
}

// Delete godoc
// @Summary Delete an owned post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Post ID is required"))
	}

	actingID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Invalid or missing token"))
	}

	if err := h.postService.Delete(c.Request().Context(), actingID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Post deleted successfully",
	})
}
