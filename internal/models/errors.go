package models

import "errors"

// Domain errors. Services and repositories wrap these with context; the HTTP
// layer maps them to status codes with errors.Is.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
