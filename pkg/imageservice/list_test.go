package imageservice

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedListRecords writes records with controlled owners, tags, and
// timestamps directly into the metadata store.
func seedListRecords(t *testing.T, store metadata.Store) {
	t.Helper()

	records := []*metadata.ImageRecord{
		{ImageID: "img-000", UserID: "alice", Title: "Beach sunset", Tags: []string{"summer"}, Location: "Lisbon", CreatedAt: "2024-01-01T00:00:00Z"},
		{ImageID: "img-001", UserID: "alice", Title: "Mountain hike", Tags: []string{"winter"}, Location: "Alps", CreatedAt: "2024-02-01T00:00:00Z"},
		{ImageID: "img-002", UserID: "bob", Title: "City lights", Tags: []string{"summer", "night"}, Location: "Tokyo", CreatedAt: "2024-03-01T00:00:00Z"},
	}
	for _, record := range records {
		record.StorageKey = "images/" + record.UserID + "/" + record.ImageID + ".png"
		record.Filename = record.ImageID + ".png"
		record.ContentType = "image/png"
		record.UpdatedAt = record.CreatedAt
		require.NoError(t, store.PutImage(context.Background(), record))
	}
}

func listedIDs(result *ListResult) []string {
	ids := make([]string, 0, len(result.Images))
	for _, img := range result.Images {
		ids = append(ids, img.ImageID)
	}
	return ids
}

func TestList_All(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 3, result.ScannedCount)
	assert.False(t, result.HasMore)
	assert.Empty(t, result.NextCursor)
	assert.ElementsMatch(t, []string{"img-000", "img-001", "img-002"}, listedIDs(result))
}

func TestList_Pagination(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	page1, err := svc.List(context.Background(), ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page1.Count)
	assert.True(t, page1.HasMore)
	require.NotEmpty(t, page1.NextCursor)

	page2, err := svc.List(context.Background(), ListQuery{Limit: 2, Cursor: page1.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, 1, page2.Count)
	assert.False(t, page2.HasMore)
	assert.Empty(t, page2.NextCursor)

	all := append(listedIDs(page1), listedIDs(page2)...)
	assert.ElementsMatch(t, []string{"img-000", "img-001", "img-002"}, all)
}

func TestList_LimitClampedToMaximum(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{MaxPageSize: 2})
	seedListRecords(t, metadataStore)

	// A limit above the maximum is clamped silently, not rejected.
	result, err := svc.List(context.Background(), ListQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 2, result.ScannedCount)
	assert.True(t, result.HasMore)
}

func TestList_FilterByOwner(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{UserID: "alice"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img-000", "img-001"}, listedIDs(result))
	assert.Equal(t, 3, result.ScannedCount)
}

func TestList_FilterByTagsIsAnyMatch(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{Tags: "winter, night"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img-001", "img-002"}, listedIDs(result))
}

func TestList_CriteriaCombineAsAnd(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{UserID: "alice", Tags: "summer"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img-000"}, listedIDs(result))
}

func TestList_FilterByTitleSubstring(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{Title: "sunset"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img-000"}, listedIDs(result))
}

func TestList_FilterByCreatedRange(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{
		CreatedAfter:  "2024-02-01T00:00:00Z",
		CreatedBefore: "2024-02-28T00:00:00Z",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"img-001"}, listedIDs(result))
}

func TestList_InvalidCursor(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	_, err := svc.List(context.Background(), ListQuery{Cursor: "%%%not-base64%%%"})
	apiErr := requireAPIError(t, err, 400, CodeInvalidPagination)
	assert.Equal(t, "Invalid last_evaluated_key format", apiErr.Message)
}

// TestList_StorageKeyNeverSerialized verifies the storage key stays out of
// listing responses end to end.
func TestList_StorageKeyNeverSerialized(t *testing.T) {
	svc, _, metadataStore := newTestService(Config{})
	seedListRecords(t, metadataStore)

	result, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(encoded), "s3_key"), "listing leaked the storage key: %s", encoded)
	assert.False(t, strings.Contains(string(encoded), "images/alice/"), "listing leaked a storage path: %s", encoded)
}
