package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marmos91/imagevault/pkg/store/content"
)

// MemoryContentStore implements content.Store with an in-memory map.
//
// Intended for tests and local development; nothing survives a restart.
// PresignGet returns ErrPresignNotSupported, which doubles as the test
// fixture for the service's presign soft-failure path.
type MemoryContentStore struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

type blob struct {
	data        []byte
	contentType string
}

// NewMemoryContentStore creates an empty in-memory content store.
func NewMemoryContentStore() *MemoryContentStore {
	return &MemoryContentStore{
		blobs: make(map[string]blob),
	}
}

// Put stores the blob under the given key, overwriting any existing entry.
func (s *MemoryContentStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = blob{
		data:        append([]byte(nil), data...),
		contentType: contentType,
	}
	return nil
}

// Get returns the blob stored under the given key.
func (s *MemoryContentStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, content.ErrBlobNotFound)
	}

	return append([]byte(nil), b.data...), nil
}

// Delete removes the blob. Deleting a missing key is not an error.
func (s *MemoryContentStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// PresignGet is not supported by the in-memory backend.
func (s *MemoryContentStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("memory content store: %w", content.ErrPresignNotSupported)
}

// Len returns the number of stored blobs. Test helper.
func (s *MemoryContentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

// Has reports whether a blob exists under the given key. Test helper.
func (s *MemoryContentStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[key]
	return ok
}
