// Package service is the mock-network façade: every operation waits a fixed
// artificial latency, enforces session and ownership checks, then works
// against the repositories. The presentation layer talks only to this package.
package service

import (
	"context"

	"retrorank/internal/config"
	"retrorank/internal/repository"
	"retrorank/internal/session"
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Comment  CommentService
	Reaction ReactionService

	session *session.Manager
	seeder  *Seeder
}

func NewService(repo *repository.Repository, sess *session.Manager, cfg *config.Config) *Service {
	lat := latency{factor: cfg.LatencyFactor}
	seeder := NewSeeder(repo, cfg.SeedData)

	return &Service{
		Auth:     NewAuthService(repo.User, sess, lat),
		Post:     NewPostService(repo, sess, lat, seeder),
		Comment:  NewCommentService(repo, sess, lat),
		Reaction: NewReactionService(repo, sess, lat),
		session:  sess,
		seeder:   seeder,
	}
}

// Seed installs the demo data when the store is empty.
func (s *Service) Seed(ctx context.Context) error {
	return s.seeder.Ensure(ctx)
}

// Session state passthroughs, part of the façade surface.

func (s *Service) CurrentUserID() (string, error) {
	return s.session.CurrentUserID()
}

func (s *Service) IsSessionValid() bool {
	return s.session.IsValid()
}

func (s *Service) ClearSession() error {
	return s.session.Clear()
}
