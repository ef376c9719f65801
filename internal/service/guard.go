package service

import (
	"fmt"

	"retrorank/internal/models"
	"retrorank/internal/session"
)

// requireUser gates every mutating façade operation: a missing or expired
// session fails before any store access (and expiry clears the session).
func requireUser(sess *session.Manager) (string, error) {
	if !sess.IsValid() {
		return "", models.ErrUnauthenticated
	}

	userID, err := sess.CurrentUserID()
	if err != nil {
		return "", fmt.Errorf("resolving session user: %w", err)
	}
	return userID, nil
}
