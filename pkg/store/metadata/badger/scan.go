package badger

import (
	"bytes"
	"context"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// Scan reads up to opts.Limit records from the image namespace, starting
// after the continuation cursor, and applies the filter to each.
//
// The continuation key is the raw database key of the last examined record.
// Resuming seeks to that key and steps past it, so a record inserted between
// pages before the cursor position is simply never seen (standard scan-cursor
// caveat). A cursor that does not carry the image key prefix is rejected as
// invalid rather than silently restarting the scan from the beginning.
func (s *BadgerMetadataStore) Scan(ctx context.Context, opts metadata.ScanOptions) (*metadata.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		return nil, fmt.Errorf("scan limit must be positive, got %d", opts.Limit)
	}

	prefix := keyImagePrefix()

	if len(opts.Cursor) > 0 && !bytes.HasPrefix(opts.Cursor, prefix) {
		return nil, &metadata.StoreError{
			Code:    metadata.ErrInvalidCursor,
			Message: "cursor is not a valid scan continuation key",
		}
	}

	result := &metadata.ScanResult{}

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = prefix

		it := txn.NewIterator(itOpts)
		defer it.Close()

		if len(opts.Cursor) > 0 {
			it.Seek(opts.Cursor)
			// The cursor names the last examined key; step past it.
			if it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), opts.Cursor) {
				it.Next()
			}
		} else {
			it.Seek(prefix)
		}

		var lastKey []byte

		for ; it.ValidForPrefix(prefix) && result.ScannedCount < opts.Limit; it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()

			err := item.Value(func(val []byte) error {
				record, err := decodeRecord(val)
				if err != nil {
					return err
				}
				if opts.Filter == nil || opts.Filter(record) {
					result.Records = append(result.Records, record)
				}
				return nil
			})
			if err != nil {
				return err
			}

			result.ScannedCount++
			lastKey = item.KeyCopy(lastKey[:0])
		}

		if it.ValidForPrefix(prefix) {
			result.HasMore = true
			result.Cursor = append([]byte(nil), lastKey...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
