//go:build integration

package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	routes "github.com/marmos91/imagevault/internal/app/http"
	"github.com/marmos91/imagevault/pkg/imageservice"
	contentmem "github.com/marmos91/imagevault/pkg/store/content/memory"
	badgermeta "github.com/marmos91/imagevault/pkg/store/metadata/badger"
)

// TestImageAPI_Integration runs the full upload/list/get/delete flow over
// HTTP against the BadgerDB metadata backend.
//
// Prerequisites:
//   - None (BadgerDB is embedded, no external services needed)
//   - Run with: go test -tags=integration ./test/integration/api/...
func TestImageAPI_Integration(t *testing.T) {
	ctx := context.Background()
	gin.SetMode(gin.TestMode)

	// ========================================================================
	// Setup: service over Badger metadata and in-memory content
	// ========================================================================

	metadataStore, err := badgermeta.NewBadgerMetadataStore(ctx, badgermeta.BadgerMetadataStoreConfig{
		Path: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Failed to create Badger metadata store: %v", err)
	}
	defer metadataStore.Close()

	svc := imageservice.New(contentmem.NewMemoryContentStore(), metadataStore, imageservice.Config{})

	router := gin.New()
	routes.RegisterRoutes(router, svc)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		t.Helper()

		var payload []byte
		if body != nil {
			payload, err = json.Marshal(body)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
		}

		req := httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		t.Helper()

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
		}
		return body
	}

	imageBytes := []byte("\x89PNG\r\n\x1a\n-integration-payload-")
	encoded := base64.StdEncoding.EncodeToString(imageBytes)

	var imageIDs []string

	// ========================================================================
	// Test: Upload several images
	// ========================================================================

	t.Run("Upload", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			w := do(http.MethodPost, "/images", map[string]any{
				"image_data": encoded,
				"filename":   fmt.Sprintf("photo-%d.png", i),
				"user_id":    "alice",
				"metadata":   map[string]any{"title": fmt.Sprintf("Photo %d", i), "tags": []string{"trip"}},
			})
			if w.Code != http.StatusCreated {
				t.Fatalf("Upload %d failed with %d: %s", i, w.Code, w.Body.String())
			}

			data := decode(w)["data"].(map[string]any)
			imageIDs = append(imageIDs, data["image_id"].(string))
		}
	})

	// ========================================================================
	// Test: List with pagination cursor
	// ========================================================================

	t.Run("ListPaginated", func(t *testing.T) {
		w := do(http.MethodGet, "/images?user_id=alice&limit=2", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("List failed with %d: %s", w.Code, w.Body.String())
		}

		page1 := decode(w)["data"].(map[string]any)
		if page1["count"].(float64) != 2 || page1["has_more"].(bool) != true {
			t.Fatalf("Expected first page of 2 with more, got %v", page1)
		}

		cursor := page1["last_evaluated_key"].(string)
		w = do(http.MethodGet, "/images?user_id=alice&limit=2&last_evaluated_key="+cursor, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Second page failed with %d: %s", w.Code, w.Body.String())
		}

		page2 := decode(w)["data"].(map[string]any)
		if page2["count"].(float64) != 1 || page2["has_more"].(bool) != false {
			t.Fatalf("Expected final page of 1, got %v", page2)
		}
	})

	// ========================================================================
	// Test: Download round trip
	// ========================================================================

	t.Run("Download", func(t *testing.T) {
		w := do(http.MethodGet, "/images/"+imageIDs[0]+"?user_id=alice&download=true", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Download failed with %d: %s", w.Code, w.Body.String())
		}

		body := decode(w)
		decoded, err := base64.StdEncoding.DecodeString(body["image_data"].(string))
		if err != nil {
			t.Fatalf("Failed to decode image payload: %v", err)
		}
		if !bytes.Equal(decoded, imageBytes) {
			t.Fatal("Downloaded payload differs from upload")
		}
	})

	// ========================================================================
	// Test: Ownership enforcement and delete
	// ========================================================================

	t.Run("DeleteFlow", func(t *testing.T) {
		w := do(http.MethodDelete, "/images/"+imageIDs[0]+"?user_id=mallory", nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("Expected 403 for foreign delete, got %d: %s", w.Code, w.Body.String())
		}

		w = do(http.MethodDelete, "/images/"+imageIDs[0]+"?user_id=alice", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Delete failed with %d: %s", w.Code, w.Body.String())
		}

		w = do(http.MethodGet, "/images/"+imageIDs[0], nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404 after delete, got %d: %s", w.Code, w.Body.String())
		}
	})
}
