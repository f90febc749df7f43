package content

import (
	"context"
	"time"
)

// Store is the blob store consumed by the image service.
//
// Keys are opaque locators generated at upload time; the store neither
// interprets nor enumerates them. Every method is a single request against
// the backing storage, so cancellation via ctx never leaves a partial
// multi-step sequence behind.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores the blob under the given key, overwriting any existing
	// object. contentType is recorded with the object where the backend
	// supports it.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the blob stored under the given key.
	// Returns ErrBlobNotFound (wrapped) if no object exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob stored under the given key. Deleting a
	// missing object is not an error.
	Delete(ctx context.Context, key string) error

	// PresignGet returns a time-limited URL from which the blob can be
	// fetched without credentials. Returns ErrPresignNotSupported
	// (wrapped) when the backend cannot mint URLs.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
