package models

import (
	"time"

	"github.com/rs/xid"
)

// NewID returns a new record identifier. xid combines a timestamp with a
// random/machine component, so collisions are negligible without a lookup.
func NewID() string {
	return xid.New().String()
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// UserInfo is the user shape returned to clients (no credentials).
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email}
}

type Post struct {
	ID            string     `json:"id"`
	CreatorID     string     `json:"creatorId"`
	CreatorName   string     `json:"creatorName"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Likes         int        `json:"likes"`
	Dislikes      int        `json:"dislikes"`
	CommentsCount int        `json:"commentsCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"postId"`
	CreatorID   string    `json:"creatorId"`
	CreatorName string    `json:"creatorName"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reaction is a user's stored interaction with a post. The neutral state is
// not stored: a missing entry means the user has no reaction.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
