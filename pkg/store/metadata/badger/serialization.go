package badger

import (
	"encoding/json"
	"fmt"

	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// Serialization Strategy
// ======================
//
// BadgerDB stores raw bytes, so records are serialized before storage. JSON
// is used for image records: they are small, schema evolution stays cheap,
// and stored values remain inspectable with standard tooling. Binary
// encodings would shave bytes but image metadata is not on a hot path that
// justifies losing debuggability.

// encodeRecord serializes an image record to JSON bytes.
func encodeRecord(record *metadata.ImageRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image record: %w", err)
	}
	return data, nil
}

// decodeRecord deserializes JSON bytes into an image record.
func decodeRecord(data []byte) (*metadata.ImageRecord, error) {
	var record metadata.ImageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode image record: %w", err)
	}
	return &record, nil
}
