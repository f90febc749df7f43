package testing

import (
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunScanTests executes the scan and pagination contract tests.
func (suite *StoreTestSuite) RunScanTests(t *testing.T) {
	t.Run("ScanEmpty", suite.testScanEmpty)
	t.Run("ScanAll", suite.testScanAll)
	t.Run("ScanRequiresPositiveLimit", suite.testScanRequiresPositiveLimit)
	t.Run("ScanPagination", suite.testScanPagination)
	t.Run("ScanFilterCountsScannedRecords", suite.testScanFilterCountsScannedRecords)
}

func (suite *StoreTestSuite) testScanEmpty(t *testing.T) {
	store := suite.NewStore(t)

	result, err := store.Scan(testContext(), metadata.ScanOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.ScannedCount)
	assert.False(t, result.HasMore)
}

func (suite *StoreTestSuite) testScanAll(t *testing.T) {
	store := suite.NewStore(t)
	seedRecords(t, store, "alice", 5)

	result, err := store.Scan(testContext(), metadata.ScanOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Records, 5)
	assert.Equal(t, 5, result.ScannedCount)
	assert.False(t, result.HasMore)
}

func (suite *StoreTestSuite) testScanRequiresPositiveLimit(t *testing.T) {
	store := suite.NewStore(t)

	_, err := store.Scan(testContext(), metadata.ScanOptions{Limit: 0})
	require.Error(t, err)
}

// testScanPagination walks a seeded store page by page and verifies every
// record is seen exactly once, regardless of iteration order.
func (suite *StoreTestSuite) testScanPagination(t *testing.T) {
	store := suite.NewStore(t)
	seedRecords(t, store, "alice", 5)

	seen := make(map[string]int)
	scanned := 0

	var cursor []byte
	for {
		result, err := store.Scan(testContext(), metadata.ScanOptions{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		require.LessOrEqual(t, result.ScannedCount, 2)

		for _, record := range result.Records {
			seen[record.ImageID]++
		}
		scanned += result.ScannedCount

		if !result.HasMore {
			break
		}
		require.NotEmpty(t, result.Cursor)
		cursor = result.Cursor
	}

	assert.Equal(t, 5, scanned)
	assert.Len(t, seen, 5)
	for id, count := range seen {
		assert.Equal(t, 1, count, "record %s returned more than once", id)
	}
}

// testScanFilterCountsScannedRecords verifies the limit bounds examined
// records, not matched ones, so ScannedCount can exceed the number of
// returned records.
func (suite *StoreTestSuite) testScanFilterCountsScannedRecords(t *testing.T) {
	store := suite.NewStore(t)
	ctx := testContext()

	require.NoError(t, store.PutImage(ctx, testRecord("img-000", "alice")))
	require.NoError(t, store.PutImage(ctx, testRecord("img-001", "alice")))
	require.NoError(t, store.PutImage(ctx, testRecord("img-002", "bob")))
	require.NoError(t, store.PutImage(ctx, testRecord("img-003", "bob")))

	onlyBob := func(r *metadata.ImageRecord) bool { return r.UserID == "bob" }

	var matched []string
	scanned := 0

	var cursor []byte
	for {
		result, err := store.Scan(testContext(), metadata.ScanOptions{
			Filter: onlyBob,
			Limit:  2,
			Cursor: cursor,
		})
		require.NoError(t, err)

		for _, record := range result.Records {
			assert.Equal(t, "bob", record.UserID)
			matched = append(matched, record.ImageID)
		}
		scanned += result.ScannedCount

		if !result.HasMore {
			break
		}
		cursor = result.Cursor
	}

	assert.Equal(t, 4, scanned)
	assert.ElementsMatch(t, []string{"img-002", "img-003"}, matched)
}
