package images_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	routes "github.com/marmos91/imagevault/internal/app/http"
	"github.com/marmos91/imagevault/pkg/imageservice"
	contentmem "github.com/marmos91/imagevault/pkg/store/content/memory"
	metadatamem "github.com/marmos91/imagevault/pkg/store/metadata/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testImage = []byte("\x89PNG\r\n\x1a\n-handler-test-data-")

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := imageservice.New(
		contentmem.NewMemoryContentStore(),
		metadatamem.NewMemoryMetadataStore(),
		imageservice.Config{},
	)

	r := gin.New()
	routes.RegisterRoutes(r, svc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func uploadTestImage(t *testing.T, r *gin.Engine, userID string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/images", gin.H{
		"image_data": base64.StdEncoding.EncodeToString(testImage),
		"filename":   "photo.png",
		"user_id":    userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]any)
	return data["image_id"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestUploadEndpoint_Success(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/images", gin.H{
		"image_data": base64.StdEncoding.EncodeToString(testImage),
		"filename":   "photo.png",
		"user_id":    "alice",
		"metadata":   gin.H{"title": "Beach", "tags": []string{"summer"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Image uploaded successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["image_id"])
	assert.Equal(t, "photo.png", data["filename"])
	assert.Contains(t, data["s3_key"], "images/alice/")
}

func TestUploadEndpoint_InvalidJSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/images", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "INVALID_JSON", errBody["code"])
	assert.Equal(t, "Invalid JSON in request body", errBody["message"])
}

func TestUploadEndpoint_ValidationErrorEnvelope(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/images", gin.H{
		"image_data": base64.StdEncoding.EncodeToString(testImage),
		"filename":   "photo.png",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "INVALID_USER_ID", errBody["code"])
	assert.Equal(t, "User ID is required", errBody["message"])
}

func TestListEndpoint(t *testing.T) {
	r := newTestRouter()
	uploadTestImage(t, r, "alice")
	uploadTestImage(t, r, "bob")

	w := doJSON(t, r, http.MethodGet, "/images?user_id=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
	assert.Equal(t, float64(2), data["scanned_count"])
	assert.Equal(t, false, data["has_more"])

	images := data["images"].([]any)
	require.Len(t, images, 1)
	first := images[0].(map[string]any)
	assert.Equal(t, "alice", first["user_id"])
	assert.NotContains(t, first, "s3_key")
}

func TestListEndpoint_NonIntegerLimit(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/images?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "INVALID_PARAMETER", errBody["code"])
	assert.Equal(t, "Invalid parameter value: limit must be an integer", errBody["message"])
}

func TestGetEndpoint_Metadata(t *testing.T) {
	r := newTestRouter()
	imageID := uploadTestImage(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/images/"+imageID+"?user_id=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, imageID, data["image_id"])
	assert.Equal(t, "photo.png", data["filename"])
	assert.NotContains(t, data, "s3_key")
}

func TestGetEndpoint_Download(t *testing.T) {
	r := newTestRouter()
	imageID := uploadTestImage(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/images/"+imageID+"?user_id=alice&download=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The download response is the payload itself, not a data envelope.
	body := decodeBody(t, w)
	assert.NotContains(t, body, "data")
	assert.Equal(t, imageID, body["image_id"])

	decoded, err := base64.StdEncoding.DecodeString(body["image_data"].(string))
	require.NoError(t, err)
	assert.Equal(t, testImage, decoded)
}

func TestGetEndpoint_NotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/images/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	errBody := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "IMAGE_NOT_FOUND", errBody["code"])
}

func TestGetEndpoint_Forbidden(t *testing.T) {
	r := newTestRouter()
	imageID := uploadTestImage(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/images/"+imageID+"?user_id=mallory", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	errBody := decodeBody(t, w)["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errBody["code"])
}

func TestDeleteEndpoint(t *testing.T) {
	r := newTestRouter()
	imageID := uploadTestImage(t, r, "alice")

	w := doJSON(t, r, http.MethodDelete, "/images/"+imageID+"?user_id=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Image deleted successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, imageID, data["image_id"])
	assert.Equal(t, true, data["deleted"])

	// The image is gone afterwards.
	w = doJSON(t, r, http.MethodGet, "/images/"+imageID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
