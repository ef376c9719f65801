package repository

import (
	"context"
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

// interactions are stored as user id -> post id -> reaction, so one user's
// entries can never collide with another's.
type interactionMap map[string]map[string]models.Reaction

type interactionRepository struct {
	store storage.Store
}

func NewInteractionRepository(store storage.Store) InteractionRepository {
	return &interactionRepository{store: store}
}

func (r *interactionRepository) readAll() interactionMap {
	return storage.ReadOr(r.store, interactionsKey, interactionMap{})
}

func (r *interactionRepository) Get(ctx context.Context, userID, postID string) (models.Reaction, error) {
	return r.readAll()[userID][postID], nil
}

func (r *interactionRepository) Set(ctx context.Context, userID, postID string, reaction models.Reaction) error {
	all := r.readAll()

	if all[userID] == nil {
		all[userID] = make(map[string]models.Reaction)
	}
	all[userID][postID] = reaction

	if err := r.store.Set(interactionsKey, all); err != nil {
		return fmt.Errorf("saving interaction: %w", err)
	}
	return nil
}

func (r *interactionRepository) Remove(ctx context.Context, userID, postID string) error {
	all := r.readAll()

	if all[userID] == nil {
		return nil
	}
	delete(all[userID], postID)

	if err := r.store.Set(interactionsKey, all); err != nil {
		return fmt.Errorf("saving interactions: %w", err)
	}
	return nil
}

func (r *interactionRepository) RemoveByPost(ctx context.Context, postID string) error {
	all := r.readAll()

	for userID := range all {
		delete(all[userID], postID)
	}

	if err := r.store.Set(interactionsKey, all); err != nil {
		return fmt.Errorf("saving interactions: %w", err)
	}
	return nil
}
