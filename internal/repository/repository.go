package repository

import (
	"context"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

// Collection keys in the key-value store.
const (
	usersKey        = "users"
	postsKey        = "posts"
	commentsKey     = "comments"
	interactionsKey = "user_interactions"
)

type UserRepository interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	// List returns all posts, newest first, with commentsCount recomputed
	// from the comments collection.
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	// RefreshCommentCount recounts comments for one post and persists the
	// result. Every comment mutation path goes through this.
	RefreshCommentCount(ctx context.Context, postID string) error
}

type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
	DeleteByPost(ctx context.Context, postID string) error
	CountByPost(ctx context.Context, postID string) (int, error)
}

type InteractionRepository interface {
	// Get returns the stored reaction for the (user, post) pair, or the
	// empty string when the user is neutral on the post.
	Get(ctx context.Context, userID, postID string) (models.Reaction, error)
	Set(ctx context.Context, userID, postID string, reaction models.Reaction) error
	Remove(ctx context.Context, userID, postID string) error
	// RemoveByPost drops the post's entries for every user.
	RemoveByPost(ctx context.Context, postID string) error
}

type Repository struct {
	User        UserRepository
	Post        PostRepository
	Comment     CommentRepository
	Interaction InteractionRepository
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		User:        NewUserRepository(store),
		Post:        NewPostRepository(store),
		Comment:     NewCommentRepository(store),
		Interaction: NewInteractionRepository(store),
	}
}
