package storage

import (
	"errors"
	"log"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a string-keyed store of JSON-encoded values. Implementations are
// explicitly constructed and injected — there is no package-level instance —
// and every operation reports its failure to the caller.
type Store interface {
	// Get decodes the value stored under key into out.
	Get(key string, out any) error
	// Set encodes v and stores it under key, replacing any previous value.
	Set(key string, v any) error
	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(key string) error
	Close() error
}

// ReadOr reads key into a value of type T, falling back to def when the key is
// missing or the read fails. Failures other than a missing key are logged.
// This is the lenient read used for collection loads; writes always propagate.
func ReadOr[T any](s Store, key string, def T) T {
	var out T
	err := s.Get(key, &out)
	if err == nil {
		return out
	}
	if !errors.Is(err, ErrKeyNotFound) {
		log.Printf("storage: read %q failed: %v", key, err)
	}
	return def
}
