// Package session manages the device's ambient login session: a signed token
// plus its issuance timestamp, both persisted in the key-value store. Validity
// is time-boxed; checking validity garbage-collects an expired session.
package session

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

const (
	tokenKey     = "token"
	timestampKey = "token_timestamp"
)

type Manager struct {
	store  storage.Store
	secret []byte
	ttl    time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

func NewManager(store storage.Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token carrying the user id and issuance time.
func (m *Manager) Issue(userID string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Save persists the token and the current timestamp as the active session.
func (m *Manager) Save(token string) error {
	if err := m.store.Set(tokenKey, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	if err := m.store.Set(timestampKey, m.now().UnixMilli()); err != nil {
		return fmt.Errorf("saving token timestamp: %w", err)
	}
	return nil
}

// IsValid reports whether an unexpired session is present. An expired session
// is cleared as a side effect, so a false result always leaves the store clean.
func (m *Manager) IsValid() bool {
	var token string
	if err := m.store.Get(tokenKey, &token); err != nil {
		return false
	}

	var issuedMilli int64
	if err := m.store.Get(timestampKey, &issuedMilli); err != nil {
		// Half-written session: drop the dangling token too.
		m.clear()
		return false
	}

	elapsed := m.now().Sub(time.UnixMilli(issuedMilli))
	if elapsed > m.ttl {
		m.clear()
		return false
	}

	return true
}

// CurrentUserID extracts the user id from the stored token. A missing token
// yields ErrUnauthenticated; a malformed or badly signed one fails parsing.
func (m *Manager) CurrentUserID() (string, error) {
	var raw string
	if err := m.store.Get(tokenKey, &raw); err != nil {
		return "", models.ErrUnauthenticated
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims format")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("session token has no subject")
	}

	return sub, nil
}

// Clear removes the session unconditionally.
func (m *Manager) Clear() error {
	m.clear()
	return nil
}

func (m *Manager) clear() {
	if err := m.store.Delete(tokenKey); err != nil {
		log.Printf("session: clearing token: %v", err)
	}
	if err := m.store.Delete(timestampKey); err != nil {
		log.Printf("session: clearing token timestamp: %v", err)
	}
}
