package testing

import (
	"fmt"
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
	"github.com/stretchr/testify/require"
)

// testRecord builds a valid image record with deterministic content derived
// from the image ID.
func testRecord(imageID, userID string) *metadata.ImageRecord {
	return &metadata.ImageRecord{
		ImageID:     imageID,
		UserID:      userID,
		StorageKey:  fmt.Sprintf("images/%s/%s.png", userID, imageID),
		Filename:    imageID + ".png",
		ContentType: "image/png",
		FileSize:    1234,
		Title:       "Record " + imageID,
		Tags:        []string{"tag-" + imageID},
		CreatedAt:   "2024-06-01T12:00:00Z",
		UpdatedAt:   "2024-06-01T12:00:00Z",
	}
}

// seedRecords writes n records with IDs img-000 .. img-(n-1), all owned by
// the given user.
func seedRecords(t *testing.T, store metadata.Store, userID string, n int) []*metadata.ImageRecord {
	t.Helper()

	records := make([]*metadata.ImageRecord, 0, n)
	for i := 0; i < n; i++ {
		record := testRecord(fmt.Sprintf("img-%03d", i), userID)
		require.NoError(t, store.PutImage(testContext(), record))
		records = append(records, record)
	}
	return records
}
