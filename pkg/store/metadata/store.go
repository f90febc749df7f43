package metadata

import "context"

// Store is the metadata store consumed by the image service.
//
// Implementations provide point lookups by image ID and a bounded, resumable
// scan over all records. Each method is a single atomic request against the
// backing store; there are no multi-step sequences requiring rollback, so
// cancellation via ctx never leaves partial writes.
//
// Implementations must be safe for concurrent use. No cross-record
// transactions are offered: per-image correctness depends only on the record
// addressed by its own key, and concurrent get/delete on the same ID may
// race with eventual (not linearizable) visibility.
type Store interface {
	// PutImage stores or overwrites the record keyed by record.ImageID.
	PutImage(ctx context.Context, record *ImageRecord) error

	// GetImage returns the record for the given image ID.
	// Returns a StoreError with ErrNotFound if no record exists.
	GetImage(ctx context.Context, imageID string) (*ImageRecord, error)

	// DeleteImage removes the record for the given image ID.
	// Returns a StoreError with ErrNotFound if no record exists.
	DeleteImage(ctx context.Context, imageID string) error

	// Scan reads up to opts.Limit records starting after opts.Cursor,
	// applies opts.Filter, and reports how far it got. The limit bounds
	// records scanned, not records matched: a page may come back empty
	// with HasMore still true when the filter rejects everything scanned.
	Scan(ctx context.Context, opts ScanOptions) (*ScanResult, error)
}

// ScanOptions controls a single bounded scan pass.
type ScanOptions struct {
	// Filter is applied to each scanned record. A nil filter accepts
	// every record.
	Filter Predicate

	// Limit is the maximum number of records to scan in this pass.
	// Must be positive.
	Limit int

	// Cursor is the native continuation key from a previous ScanResult.
	// Empty means start from the beginning. The cursor is opaque to
	// callers; the service layer wraps it in a transport encoding.
	Cursor []byte
}

// ScanResult is the outcome of one scan pass.
type ScanResult struct {
	// Records are the scanned records accepted by the filter, in store
	// iteration order. No ordering is guaranteed across pages.
	Records []*ImageRecord

	// ScannedCount is the number of records examined, including ones the
	// filter rejected.
	ScannedCount int

	// HasMore indicates further records may exist past this page.
	HasMore bool

	// Cursor resumes the scan after the last examined record. Only set
	// when HasMore is true.
	Cursor []byte
}
