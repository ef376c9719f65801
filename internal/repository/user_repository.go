package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

type userRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) readAll() []models.User {
	return storage.ReadOr(r.store, usersKey, []models.User{})
}

func (r *userRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	users := r.readAll()

	// Exact, case-sensitive match.
	for _, u := range users {
		if u.Email == req.Email {
			return nil, fmt.Errorf("%s: %w", req.Email, models.ErrEmailTaken)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:           models.NewID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	users = append(users, user)
	if err := r.store.Set(usersKey, users); err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	for _, u := range r.readAll() {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", userID, models.ErrUserNotFound)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.readAll() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrUserNotFound)
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}
