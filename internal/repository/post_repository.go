package repository

import (
	"context"
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

type postRepository struct {
	store storage.Store
}

func NewPostRepository(store storage.Store) PostRepository {
	return &postRepository{store: store}
}

func (r *postRepository) readAll() []models.Post {
	return storage.ReadOr(r.store, postsKey, []models.Post{})
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	posts := r.readAll()
	comments := storage.ReadOr(r.store, commentsKey, []models.Comment{})

	counts := make(map[string]int, len(posts))
	for _, c := range comments {
		counts[c.PostID]++
	}

	changed := false
	for i := range posts {
		if posts[i].CommentsCount != counts[posts[i].ID] {
			posts[i].CommentsCount = counts[posts[i].ID]
			changed = true
		}
	}

	// Denormalized counts converge on every listing.
	if changed {
		if err := r.store.Set(postsKey, posts); err != nil {
			return nil, fmt.Errorf("saving refreshed comment counts: %w", err)
		}
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	for _, p := range r.readAll() {
		if p.ID == postID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("post %s: %w", postID, models.ErrPostNotFound)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	posts := r.readAll()

	// Prepend: the listing stays newest-first by insertion order, no sort.
	posts = append([]models.Post{*post}, posts...)

	if err := r.store.Set(postsKey, posts); err != nil {
		return fmt.Errorf("saving post: %w", err)
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	posts := r.readAll()

	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			if err := r.store.Set(postsKey, posts); err != nil {
				return fmt.Errorf("saving post: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("post %s: %w", post.ID, models.ErrPostNotFound)
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	posts := r.readAll()

	kept := posts[:0:0]
	found := false
	for _, p := range posts {
		if p.ID == postID {
			found = true
			continue
		}
		kept = append(kept, p)
	}

	if !found {
		return fmt.Errorf("post %s: %w", postID, models.ErrPostNotFound)
	}

	if err := r.store.Set(postsKey, kept); err != nil {
		return fmt.Errorf("saving posts: %w", err)
	}
	return nil
}

func (r *postRepository) RefreshCommentCount(ctx context.Context, postID string) error {
	posts := r.readAll()
	comments := storage.ReadOr(r.store, commentsKey, []models.Comment{})

	count := 0
	for _, c := range comments {
		if c.PostID == postID {
			count++
		}
	}

	for i := range posts {
		if posts[i].ID == postID {
			posts[i].CommentsCount = count
			if err := r.store.Set(postsKey, posts); err != nil {
				return fmt.Errorf("saving comment count: %w", err)
			}
			return nil
		}
	}

	// The parent post may have been deleted concurrently; nothing to update.
	return nil
}
