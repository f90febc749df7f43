package badger

import (
	"context"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerMetadataStore implements metadata.Store using BadgerDB for
// persistence.
//
// This implementation provides a persistent image metadata store backed by
// BadgerDB, a fast embedded key-value store. It is suitable for:
//   - Production single-node deployments requiring persistence across restarts
//   - Local development without external database dependencies
//   - Test runs via the in-memory Badger mode
//
// Storage Model:
// Records are stored under a namespaced key prefix (see keys.go) with JSON
// values (see serialization.go). Point lookups are O(1); listing uses a
// prefix iterator with a resumable continuation key.
//
// Thread Safety:
// BadgerDB transactions provide snapshot isolation; all operations here are
// single-transaction and safe for concurrent use from multiple goroutines.
//
// Scan Consistency:
// Each Scan call runs in its own read transaction. Page membership is stable
// across repeated calls with the same cursor only if no concurrent writes
// occur in between; no stronger promise is made.
type BadgerMetadataStore struct {
	db *badger.DB
}

// BadgerMetadataStoreConfig contains configuration for the BadgerDB store.
type BadgerMetadataStoreConfig struct {
	// Path is the database directory. Required unless InMemory is set.
	Path string `mapstructure:"path"`

	// InMemory runs BadgerDB without touching disk. Used by tests and
	// throwaway environments.
	InMemory bool `mapstructure:"in_memory"`

	// SyncWrites forces an fsync on every write. Slower, but no committed
	// record is lost on crash.
	SyncWrites bool `mapstructure:"sync_writes"`
}

// NewBadgerMetadataStore opens (or creates) the BadgerDB database.
func NewBadgerMetadataStore(ctx context.Context, cfg BadgerMetadataStoreConfig) (*BadgerMetadataStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("badger metadata store: path is required")
	}

	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerMetadataStore{db: db}, nil
}

// Close closes the underlying database. The store is unusable afterwards.
func (s *BadgerMetadataStore) Close() error {
	return s.db.Close()
}
