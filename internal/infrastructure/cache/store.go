package cache

import (
	"context"
	"time"
)

// Store is the key-value cache used for generation result reuse. Backed by
// Redis when available, by the in-memory store otherwise.
type Store interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Close releases store resources
	Close() error
}
