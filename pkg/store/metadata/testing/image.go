package testing

import (
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecordTests executes the put/get/delete contract tests.
func (suite *StoreTestSuite) RunRecordTests(t *testing.T) {
	t.Run("PutAndGet", suite.testPutAndGet)
	t.Run("PutOverwrites", suite.testPutOverwrites)
	t.Run("GetNotFound", suite.testGetNotFound)
	t.Run("Delete", suite.testDelete)
	t.Run("DeleteNotFound", suite.testDeleteNotFound)
	t.Run("RecordIsolation", suite.testRecordIsolation)
}

func (suite *StoreTestSuite) testPutAndGet(t *testing.T) {
	store := suite.NewStore(t)
	ctx := testContext()

	original := testRecord("img-1", "alice")
	require.NoError(t, store.PutImage(ctx, original))

	got, err := store.GetImage(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func (suite *StoreTestSuite) testPutOverwrites(t *testing.T) {
	store := suite.NewStore(t)
	ctx := testContext()

	require.NoError(t, store.PutImage(ctx, testRecord("img-1", "alice")))

	updated := testRecord("img-1", "alice")
	updated.Title = "Updated title"
	updated.UpdatedAt = "2024-06-02T12:00:00Z"
	require.NoError(t, store.PutImage(ctx, updated))

	got, err := store.GetImage(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, "2024-06-02T12:00:00Z", got.UpdatedAt)
}

func (suite *StoreTestSuite) testGetNotFound(t *testing.T) {
	store := suite.NewStore(t)

	_, err := store.GetImage(testContext(), "missing")
	require.Error(t, err)
	assert.True(t, metadata.IsNotFound(err))
}

func (suite *StoreTestSuite) testDelete(t *testing.T) {
	store := suite.NewStore(t)
	ctx := testContext()

	require.NoError(t, store.PutImage(ctx, testRecord("img-1", "alice")))
	require.NoError(t, store.DeleteImage(ctx, "img-1"))

	_, err := store.GetImage(ctx, "img-1")
	assert.True(t, metadata.IsNotFound(err))
}

func (suite *StoreTestSuite) testDeleteNotFound(t *testing.T) {
	store := suite.NewStore(t)

	err := store.DeleteImage(testContext(), "missing")
	require.Error(t, err)
	assert.True(t, metadata.IsNotFound(err))
}

// testRecordIsolation verifies that mutating a record after PutImage, or
// mutating the result of GetImage, does not leak into the store.
func (suite *StoreTestSuite) testRecordIsolation(t *testing.T) {
	store := suite.NewStore(t)
	ctx := testContext()

	original := testRecord("img-1", "alice")
	require.NoError(t, store.PutImage(ctx, original))

	original.Title = "mutated after put"
	original.Tags[0] = "mutated"

	got, err := store.GetImage(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "Record img-1", got.Title)
	assert.Equal(t, []string{"tag-img-1"}, got.Tags)

	got.Tags[0] = "mutated again"

	again, err := store.GetImage(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tag-img-1"}, again.Tags)
}
