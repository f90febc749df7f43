package badger

import (
	"context"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// PutImage stores or overwrites the record keyed by record.ImageID.
//
// The write is a single transaction; cancellation before the transaction
// starts leaves the store untouched.
func (s *BadgerMetadataStore) PutImage(ctx context.Context, record *metadata.ImageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyImage(record.ImageID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store image record: %w", err)
	}

	return nil
}

// GetImage returns the record for the given image ID.
func (s *BadgerMetadataStore) GetImage(ctx context.Context, imageID string) (*metadata.ImageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *metadata.ImageRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyImage(imageID))
		if err == badger.ErrKeyNotFound {
			return &metadata.StoreError{
				Code:    metadata.ErrNotFound,
				Message: "image record not found",
			}
		}
		if err != nil {
			return fmt.Errorf("failed to get image record: %w", err)
		}

		return item.Value(func(val []byte) error {
			record, err = decodeRecord(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteImage removes the record for the given image ID.
//
// The existence check and the delete run in the same transaction, so a
// concurrent delete of the same ID surfaces as not-found rather than a
// silent double delete.
func (s *BadgerMetadataStore) DeleteImage(ctx context.Context, imageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		key := keyImage(imageID)

		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return &metadata.StoreError{
				Code:    metadata.ErrNotFound,
				Message: "image record not found",
			}
		} else if err != nil {
			return fmt.Errorf("failed to get image record: %w", err)
		}

		return txn.Delete(key)
	})
	if err != nil {
		if metadata.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete image record: %w", err)
	}

	return nil
}
