package service

import (
	"context"
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/repository"
	"retrorank/internal/session"
)

type AuthResult struct {
	Token string          `json:"token"`
	User  models.UserInfo `json:"user"`
}

type AuthService interface {
	Signup(ctx context.Context, req models.CreateUserRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error
}

type authService struct {
	userRepo repository.UserRepository
	session  *session.Manager
	lat      latency
}

func NewAuthService(userRepo repository.UserRepository, sess *session.Manager, lat latency) AuthService {
	return &authService{userRepo: userRepo, session: sess, lat: lat}
}

func (s *authService) Signup(ctx context.Context, req models.CreateUserRequest) (*AuthResult, error) {
	s.lat.sleep(authDelay)

	user, err := s.userRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.startSession(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	s.lat.sleep(authDelay)

	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	return s.startSession(user)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear()
}

func (s *authService) startSession(user *models.User) (*AuthResult, error) {
	token, err := s.session.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	if err := s.session.Save(token); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	return &AuthResult{Token: token, User: user.Info()}, nil
}
