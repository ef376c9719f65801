package service

import (
	"context"
	"fmt"
	"sync"

	"retrorank/internal/models"
	"retrorank/internal/repository"
	"retrorank/internal/session"
)

type ReactionService interface {
	Like(ctx context.Context, postID string) (*models.Post, error)
	Dislike(ctx context.Context, postID string) (*models.Post, error)
}

type reactionService struct {
	repo    *repository.Repository
	session *session.Manager
	lat     latency

	// mu serializes the read-modify-write of interaction + counters so the
	// two counter deltas of a flip land as one logical operation.
	mu sync.Mutex
}

func NewReactionService(repo *repository.Repository, sess *session.Manager, lat latency) ReactionService {
	return &reactionService{repo: repo, session: sess, lat: lat}
}

func (s *reactionService) Like(ctx context.Context, postID string) (*models.Post, error) {
	return s.apply(ctx, postID, models.ReactionLike)
}

func (s *reactionService) Dislike(ctx context.Context, postID string) (*models.Post, error) {
	return s.apply(ctx, postID, models.ReactionDislike)
}

func (s *reactionService) apply(ctx context.Context, postID string, action models.Reaction) (*models.Post, error) {
	s.lat.sleep(reactDelay)

	userID, err := requireUser(s.session)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.Interaction.Get(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("reading interaction: %w", err)
	}

	next, dLikes, dDislikes := applyReaction(current, action)

	if next == "" {
		err = s.repo.Interaction.Remove(ctx, userID, postID)
	} else {
		err = s.repo.Interaction.Set(ctx, userID, postID, next)
	}
	if err != nil {
		return nil, err
	}

	post.Likes = clampZero(post.Likes + dLikes)
	post.Dislikes = clampZero(post.Dislikes + dDislikes)

	if err := s.repo.Post.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// applyReaction is the toggle transition: repeating an action cancels it,
// the opposite action flips the pair. The empty reaction is neutral.
//
//	neutral  + like    -> like     (+1,  0)
//	neutral  + dislike -> dislike  ( 0, +1)
//	like     + like    -> neutral  (-1,  0)
//	like     + dislike -> dislike  (-1, +1)
//	dislike  + dislike -> neutral  ( 0, -1)
//	dislike  + like    -> like     (+1, -1)
func applyReaction(current, action models.Reaction) (next models.Reaction, dLikes, dDislikes int) {
	switch current {
	case action:
		if action == models.ReactionLike {
			return "", -1, 0
		}
		return "", 0, -1
	case "":
		if action == models.ReactionLike {
			return models.ReactionLike, 1, 0
		}
		return models.ReactionDislike, 0, 1
	default:
		if action == models.ReactionLike {
			return models.ReactionLike, 1, -1
		}
		return models.ReactionDislike, -1, 1
	}
}

// Counters never go negative, even if stored state was corrupted earlier.
func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
