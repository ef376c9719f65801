package service

import (
	"context"
	"fmt"
	"log"

	"retrorank/internal/models"
	"retrorank/internal/repository"
	"retrorank/internal/session"
)

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
}

type postService struct {
	repo    *repository.Repository
	session *session.Manager
	lat     latency
	seeder  *Seeder
	clock   clock
}

func NewPostService(repo *repository.Repository, sess *session.Manager, lat latency, seeder *Seeder) PostService {
	return &postService{repo: repo, session: sess, lat: lat, seeder: seeder, clock: systemClock{}}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	s.lat.sleep(listDelay)

	// The original mock API re-ran its data bootstrap on every listing.
	if err := s.seeder.Ensure(ctx); err != nil {
		log.Printf("seed: %v", err)
	}

	posts, err := s.repo.Post.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	s.lat.sleep(listDelay)

	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	s.lat.sleep(writeDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving creator: %w", err)
	}

	post := &models.Post{
		ID:          models.NewID(),
		CreatorID:   user.ID,
		CreatorName: user.Name,
		Title:       req.Title,
		Content:     req.Content,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Post.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error) {
	s.lat.sleep(writeDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.CreatorID != userID {
		return nil, fmt.Errorf("updating post %s: %w", postID, models.ErrForbidden)
	}

	now := s.clock.Now()
	post.Title = req.Title
	post.Content = req.Content
	post.UpdatedAt = &now

	if err := s.repo.Post.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and cascades: its comments go, and every user's
// interaction entry for it goes.
func (s *postService) Delete(ctx context.Context, postID string) error {
	s.lat.sleep(deleteDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return err
	}

	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.CreatorID != userID {
		return fmt.Errorf("deleting post %s: %w", postID, models.ErrForbidden)
	}

	if err := s.repo.Post.Delete(ctx, postID); err != nil {
		return err
	}
	if err := s.repo.Comment.DeleteByPost(ctx, postID); err != nil {
		return fmt.Errorf("cascading comments: %w", err)
	}
	if err := s.repo.Interaction.RemoveByPost(ctx, postID); err != nil {
		return fmt.Errorf("cascading interactions: %w", err)
	}

	return nil
}
