package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// MemoryMetadataStore implements metadata.Store with an in-memory map.
//
// This implementation is intended for tests and local development. Nothing
// survives a restart. Scan iterates records in sorted key order, which makes
// pagination deterministic in tests; callers must not rely on that ordering,
// since the persistent store only promises store iteration order.
//
// Thread Safety:
// All operations are guarded by a single read-write mutex. Coarse, but
// correct, and contention is irrelevant at test scale.
type MemoryMetadataStore struct {
	mu      sync.RWMutex
	records map[string]*metadata.ImageRecord
}

// NewMemoryMetadataStore creates an empty in-memory metadata store.
func NewMemoryMetadataStore() *MemoryMetadataStore {
	return &MemoryMetadataStore{
		records: make(map[string]*metadata.ImageRecord),
	}
}

// PutImage stores or overwrites the record keyed by record.ImageID.
func (s *MemoryMetadataStore) PutImage(ctx context.Context, record *metadata.ImageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := *record
	if record.Tags != nil {
		copied.Tags = append([]string(nil), record.Tags...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ImageID] = &copied

	return nil
}

// GetImage returns the record for the given image ID.
func (s *MemoryMetadataStore) GetImage(ctx context.Context, imageID string) (*metadata.ImageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[imageID]
	if !ok {
		return nil, &metadata.StoreError{
			Code:    metadata.ErrNotFound,
			Message: "image record not found",
		}
	}

	copied := *record
	if record.Tags != nil {
		copied.Tags = append([]string(nil), record.Tags...)
	}
	return &copied, nil
}

// DeleteImage removes the record for the given image ID.
func (s *MemoryMetadataStore) DeleteImage(ctx context.Context, imageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[imageID]; !ok {
		return &metadata.StoreError{
			Code:    metadata.ErrNotFound,
			Message: "image record not found",
		}
	}

	delete(s.records, imageID)
	return nil
}

// Scan reads up to opts.Limit records in sorted key order, starting after
// the continuation cursor (the last examined image ID).
func (s *MemoryMetadataStore) Scan(ctx context.Context, opts metadata.ScanOptions) (*metadata.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		return nil, fmt.Errorf("scan limit must be positive, got %d", opts.Limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for id := range s.records {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	start := 0
	if len(opts.Cursor) > 0 {
		cursor := string(opts.Cursor)
		start = sort.SearchStrings(keys, cursor)
		if start < len(keys) && keys[start] == cursor {
			start++
		}
	}

	result := &metadata.ScanResult{}

	i := start
	for ; i < len(keys) && result.ScannedCount < opts.Limit; i++ {
		record := s.records[keys[i]]
		if opts.Filter == nil || opts.Filter(record) {
			copied := *record
			if record.Tags != nil {
				copied.Tags = append([]string(nil), record.Tags...)
			}
			result.Records = append(result.Records, &copied)
		}
		result.ScannedCount++
	}

	if i < len(keys) {
		result.HasMore = true
		result.Cursor = []byte(keys[i-1])
	}

	return result, nil
}
