package repository

import (
	"context"
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

type commentRepository struct {
	store storage.Store
}

func NewCommentRepository(store storage.Store) CommentRepository {
	return &commentRepository{store: store}
}

func (r *commentRepository) readAll() []models.Comment {
	return storage.ReadOr(r.store, commentsKey, []models.Comment{})
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.readAll() {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	for _, c := range r.readAll() {
		if c.ID == commentID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("comment %s: %w", commentID, models.ErrCommentNotFound)
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comments := append(r.readAll(), *comment)

	if err := r.store.Set(commentsKey, comments); err != nil {
		return fmt.Errorf("saving comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	comments := r.readAll()

	kept := comments[:0:0]
	found := false
	for _, c := range comments {
		if c.ID == commentID {
			found = true
			continue
		}
		kept = append(kept, c)
	}

	if !found {
		return fmt.Errorf("comment %s: %w", commentID, models.ErrCommentNotFound)
	}

	if err := r.store.Set(commentsKey, kept); err != nil {
		return fmt.Errorf("saving comments: %w", err)
	}
	return nil
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID string) error {
	comments := r.readAll()

	kept := comments[:0:0]
	for _, c := range comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}

	if err := r.store.Set(commentsKey, kept); err != nil {
		return fmt.Errorf("saving comments: %w", err)
	}
	return nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	count := 0
	for _, c := range r.readAll() {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}
