package imageservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// UploadRequest is the payload of POST /images.
type UploadRequest struct {
	// ImageData is the base64-encoded image payload.
	ImageData string

	// Filename is the original filename; its extension selects the
	// content type and must be on the allow-list.
	Filename string

	// UserID identifies the uploading principal and becomes the
	// immutable record owner.
	UserID string

	// Metadata is the optional free-form metadata object.
	Metadata *Metadata
}

// UploadResult is the success payload of an upload. It is the one place the
// storage key is exposed: it names the object just written for the caller
// that created it. List and get responses never include it.
type UploadResult struct {
	ImageID    string `json:"image_id"`
	Filename   string `json:"filename"`
	StorageKey string `json:"s3_key"`
	CreatedAt  string `json:"created_at"`
}

// Upload validates the request, stores the blob, then writes the metadata
// record.
//
// Ordering is blob first: a record only ever exists once its blob write has
// been acknowledged. If the record write fails afterwards the blob is
// orphaned; that divergence is reported as an error to the caller, never as
// success. Each store call is a single atomic request, so cancellation
// leaves no partial multi-step state.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if apiErr := validateUserID(req.UserID); apiErr != nil {
		return nil, apiErr
	}

	decoded, ext, apiErr := s.validateImageFile(req.ImageData, req.Filename)
	if apiErr != nil {
		return nil, apiErr
	}

	if apiErr := validateMetadata(req.Metadata); apiErr != nil {
		return nil, apiErr
	}

	imageID := uuid.NewString()
	storageKey := fmt.Sprintf("images/%s/%s.%s", req.UserID, imageID, ext)
	contentType := contentTypeFor(ext)
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := s.content.Put(ctx, storageKey, decoded, contentType); err != nil {
		return nil, internalError(err)
	}

	record := &metadata.ImageRecord{
		ImageID:     imageID,
		UserID:      req.UserID,
		StorageKey:  storageKey,
		Filename:    req.Filename,
		ContentType: contentType,
		FileSize:    int64(len(decoded)),
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	if md := req.Metadata; md != nil {
		record.Title = md.Title
		record.Description = md.Description
		record.Location = md.Location
		if len(md.Tags) > 0 {
			record.Tags = md.Tags
		}
	}

	if err := s.metadata.PutImage(ctx, record); err != nil {
		return nil, internalError(err)
	}

	return &UploadResult{
		ImageID:    imageID,
		Filename:   req.Filename,
		StorageKey: storageKey,
		CreatedAt:  timestamp,
	}, nil
}
