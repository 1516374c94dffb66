package errors

import (
	"errors"
	"net/http"
)

// Domain errors. The messages double as the user-facing envelope messages,
// so their wording is part of the API contract.
var (
	// ErrUserExists is returned when sign-up hits an existing email or username.
	ErrUserExists = errors.New("User already exists")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidPassword is returned when sign-in password verification fails.
	ErrInvalidPassword = errors.New("Invalid password")
	// ErrPostNotFound is returned when a referenced post does not exist.
	ErrPostNotFound = errors.New("Post not found")
	// ErrCommentNotFound is returned when a comment does not exist.
	ErrCommentNotFound = errors.New("Comment not found")
	// ErrLikeNotFound is returned when a like does not exist.
	ErrLikeNotFound = errors.New("Like not found")
	// ErrNoPostsFound is returned when a post listing page is empty.
	ErrNoPostsFound = errors.New("No posts found")
	// ErrNoUsersFound is returned when a user listing page is empty.
	ErrNoUsersFound = errors.New("No users found")
	// ErrUpdatePostForbidden is returned when a non-owner updates a post.
	ErrUpdatePostForbidden = errors.New("You are not authorized to update this post")
	// ErrDeletePostForbidden is returned when a non-owner deletes a post.
	ErrDeletePostForbidden = errors.New("You are not authorized to delete this post")
	// ErrDeleteCommentForbidden is returned when a non-owner deletes a comment.
	ErrDeleteCommentForbidden = errors.New("You are not authorized to delete this comment")
	// ErrDeleteLikeForbidden is returned when a non-owner deletes a like.
	ErrDeleteLikeForbidden = errors.New("You can only delete your own likes")
	// ErrUpdateUserForbidden is returned when a user edits someone else's profile.
	ErrUpdateUserForbidden = errors.New("You are not authorized to update this profile")
	// ErrUploadFailed is returned when the image hosting provider rejects an upload.
	ErrUploadFailed = errors.New("Failed to upload image")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapError maps domain errors to HTTP errors. Anything unrecognized becomes
// an opaque 500 so store error detail never reaches a response body.
func MapError(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrLikeNotFound),
		errors.Is(err, ErrNoPostsFound),
		errors.Is(err, ErrNoUsersFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUpdatePostForbidden),
		errors.Is(err, ErrDeletePostForbidden),
		errors.Is(err, ErrDeleteCommentForbidden),
		errors.Is(err, ErrDeleteLikeForbidden),
		errors.Is(err, ErrUpdateUserForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUploadFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
