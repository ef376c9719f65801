package service

import (
	"context"
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/repository"
	"retrorank/internal/session"
)

type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Create(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type commentService struct {
	repo    *repository.Repository
	session *session.Manager
	lat     latency
	clock   clock
}

func NewCommentService(repo *repository.Repository, sess *session.Manager, lat latency) CommentService {
	return &commentService{repo: repo, session: sess, lat: lat, clock: systemClock{}}
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	s.lat.sleep(readDelay)

	comments, err := s.repo.Comment.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	s.lat.sleep(writeDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Post.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving creator: %w", err)
	}

	comment := &models.Comment{
		ID:          models.NewID(),
		PostID:      postID,
		CreatorID:   user.ID,
		CreatorName: user.Name,
		Content:     req.Content,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.repo.Post.RefreshCommentCount(ctx, postID); err != nil {
		return nil, fmt.Errorf("refreshing comment count: %w", err)
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, commentID string) error {
	s.lat.sleep(deleteDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return err
	}

	comment, err := s.repo.Comment.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.CreatorID != userID {
		return fmt.Errorf("deleting comment %s: %w", commentID, models.ErrForbidden)
	}

	if err := s.repo.Comment.Delete(ctx, commentID); err != nil {
		return err
	}

	if err := s.repo.Post.RefreshCommentCount(ctx, comment.PostID); err != nil {
		return fmt.Errorf("refreshing comment count: %w", err)
	}

	return nil
}
