package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bunnypost/internal/auth"
	apperrors "bunnypost/internal/errors"
	"bunnypost/internal/model"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Token      string      `json:"token,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

// Pagination describes one page of a listing. Total is the number of items
// in the returned page; TotalPages is derived from the global filtered
// count. The two are intentionally different quantities.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fail builds a failure envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// respondError translates a domain error into a failure envelope.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapError(err)
	return c.JSON(httpErr.StatusCode, Fail(httpErr.Message))
}

// invalidInput answers a validation failure with per-field error detail.
func invalidInput(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Invalid input",
		Errors:  fieldErrors(err),
	})
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return out
}

// actorID extracts the verified identity placed in context by the JWT
// middleware. Handlers never trust client-supplied author fields.
func actorID(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// pageParams reads 1-based page and limit query params with defaults.
func pageParams(c echo.Context) (page, limit int) {
	page, limit = 1, 10
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

// AuthorSummary is the reduced author shape embedded in posts and comments.
// It never carries email or password material.
type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// UserSummary is the shape returned by the user listing.
type UserSummary struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profilePictureUrl"`
}

// CommentView is a comment as rendered inside a post. Author is only set on
// the post detail view, where comment authors are eagerly loaded.
type CommentView struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	AuthorID  uuid.UUID      `json:"authorId"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    *AuthorSummary `json:"author,omitempty"`
}

// LikeView references a like without duplicating post data.
type LikeView struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"authorId"`
}

// PostView is a post with its eager-loaded relations.
type PostView struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	AuthorID  uuid.UUID      `json:"authorId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Author    *AuthorSummary `json:"author,omitempty"`
	Comments  []CommentView  `json:"comments"`
	Likes     []LikeView     `json:"likes"`
}

func newAuthorSummary(u *model.User) *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func newUserSummaries(users []model.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			ID:                u.ID,
			Username:          u.Username,
			FirstName:         u.FirstName,
			LastName:          u.LastName,
			Bio:               u.Bio,
			ProfilePictureURL: u.ProfilePictureURL,
		})
	}
	return out
}

func newPostView(p model.Post) PostView {
	comments := make([]CommentView, 0, len(p.Comments))
	for _, cm := range p.Comments {
		comments = append(comments, CommentView{
			ID:        cm.ID,
			Content:   cm.Content,
			AuthorID:  cm.AuthorID,
			CreatedAt: cm.CreatedAt,
			Author:    newAuthorSummary(cm.Author),
		})
	}
	likes := make([]LikeView, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, LikeView{ID: l.ID, AuthorID: l.AuthorID})
	}
	return PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author:    newAuthorSummary(p.Author),
		Comments:  comments,
		Likes:     likes,
	}
}

func newPostViews(posts []model.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostView(p))
	}
	return out
}
