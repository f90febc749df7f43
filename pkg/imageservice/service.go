// Package imageservice implements the image hosting operations: upload,
// list with composable filters and cursor pagination, authorization-gated
// get, and authorization-gated delete.
//
// The service sits between the HTTP handlers and the two stores (blob
// content store, key-value metadata store). All validation happens here
// before any store is touched, and every failure is reported as an *Error
// carrying the API status, code, and message.
package imageservice

import (
	"time"

	"github.com/marmos91/imagevault/pkg/store/content"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// Config contains the service's tunable limits. Zero values are replaced
// with defaults by New.
type Config struct {
	// MaxImageSizeBytes is the maximum decoded image size (default 10 MiB).
	MaxImageSizeBytes int64

	// AllowedExtensions is the filename extension allow-list
	// (default png, jpg, jpeg, gif, webp).
	AllowedExtensions []string

	// DefaultPageSize is the list page size when the caller supplies none
	// (default 20).
	DefaultPageSize int

	// MaxPageSize caps the caller-requested page size; larger requests are
	// clamped silently (default 100).
	MaxPageSize int

	// PresignTTL is the validity window of presigned download URLs
	// (default 1 hour).
	PresignTTL time.Duration
}

// contentTypeByExtension is the static, total mapping from allowed filename
// extensions to content types. Extensions outside the allow-list never reach
// this map; unknown entries fall back to application/octet-stream.
var contentTypeByExtension = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

func contentTypeFor(ext string) string {
	if ct, ok := contentTypeByExtension[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Service implements the image hosting operations on top of a content store
// and a metadata store.
//
// The service holds no mutable state beyond configuration; every request is
// independently schedulable and no cross-request synchronization exists.
type Service struct {
	content           content.Store
	metadata          metadata.Store
	cfg               Config
	allowedExtensions map[string]bool
}

// New creates a Service over the given stores, filling unset config fields
// with defaults.
func New(contentStore content.Store, metadataStore metadata.Store, cfg Config) *Service {
	if cfg.MaxImageSizeBytes == 0 {
		cfg.MaxImageSizeBytes = 10 * 1024 * 1024
	}
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	if cfg.DefaultPageSize == 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize == 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.PresignTTL == 0 {
		cfg.PresignTTL = time.Hour
	}

	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[ext] = true
	}

	return &Service{
		content:           contentStore,
		metadata:          metadataStore,
		cfg:               cfg,
		allowedExtensions: allowed,
	}
}

// ImageView is an image record as exposed to clients: every ImageRecord
// field except the storage key, which never leaves the service.
type ImageView struct {
	ImageID     string   `json:"image_id"`
	UserID      string   `json:"user_id"`
	Filename    string   `json:"filename"`
	ContentType string   `json:"content_type"`
	FileSize    int64    `json:"file_size"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Location    string   `json:"location,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func viewOf(record *metadata.ImageRecord) ImageView {
	return ImageView{
		ImageID:     record.ImageID,
		UserID:      record.UserID,
		Filename:    record.Filename,
		ContentType: record.ContentType,
		FileSize:    record.FileSize,
		Title:       record.Title,
		Description: record.Description,
		Tags:        record.Tags,
		Location:    record.Location,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// authorize compares the caller's identity claim against the record owner.
//
// An empty claim skips the check entirely: omitting user_id acts as an
// unauthenticated/admin bypass. See DESIGN.md for the open product question
// around hardening it.
func authorize(record *metadata.ImageRecord, userID, action string) *Error {
	if userID == "" {
		return nil
	}
	if record.UserID != userID {
		return &Error{
			Status:  403,
			Code:    CodeForbidden,
			Message: "Not authorized to " + action + " this image",
		}
	}
	return nil
}
