// Package testing provides a reusable test suite for metadata.Store
// implementations. It tests the interface contract, not implementation
// details, so the same suite runs against the memory and Badger backends.
//
// Usage:
//
//	func TestMyMetadataStore(t *testing.T) {
//	    suite := &testing.StoreTestSuite{
//	        NewStore: func(t *testing.T) metadata.Store {
//	            return mystore.New()
//	        },
//	    }
//	    suite.Run(t)
//	}
package testing

import (
	"context"
	"testing"

	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// StoreTestSuite is the shared test suite for metadata.Store
// implementations.
type StoreTestSuite struct {
	// NewStore creates a fresh store for each test. Backends that need
	// teardown should register it with t.Cleanup.
	NewStore func(t *testing.T) metadata.Store
}

// Run executes all tests in the suite.
func (suite *StoreTestSuite) Run(t *testing.T) {
	t.Run("RecordOperations", suite.RunRecordTests)
	t.Run("ScanOperations", suite.RunScanTests)
}

// testContext returns a standard test context.
func testContext() context.Context {
	return context.Background()
}
