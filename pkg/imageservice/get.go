package imageservice

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/marmos91/imagevault/internal/logger"
	"github.com/marmos91/imagevault/pkg/store/content"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// GetRequest carries the parameters of GET /images/{image_id}.
type GetRequest struct {
	ImageID string

	// UserID is the caller's optional identity claim. Empty skips the
	// ownership check (documented bypass, see authorize).
	UserID string

	// Download selects the raw payload response instead of metadata plus
	// presigned URL.
	Download bool
}

// GetResult is the metadata response (download=false). The presigned URL
// fields are omitted when URL generation failed; that soft failure never
// blocks the metadata itself.
type GetResult struct {
	ImageView
	DownloadURL  string `json:"download_url,omitempty"`
	URLExpiresIn int64  `json:"url_expires_in,omitempty"`
}

// DownloadResult is the raw payload response (download=true).
type DownloadResult struct {
	ImageID     string `json:"image_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`

	// ImageData is the base64-encoded blob, byte-identical to the
	// original upload once decoded.
	ImageData string `json:"image_data"`
}

// Get fetches a single image: metadata plus a presigned URL by default, or
// the base64 payload when Download is set.
//
// Gate order: lookup (404 IMAGE_NOT_FOUND), ownership check (403), then the
// storage side effect. A record whose blob has gone missing is reported as
// 404 FILE_NOT_FOUND, a distinct code from the record-level not-found, so
// callers can tell the two apart.
func (s *Service) Get(ctx context.Context, req GetRequest) (*GetResult, *DownloadResult, error) {
	if apiErr := validateImageID(req.ImageID); apiErr != nil {
		return nil, nil, apiErr
	}

	record, err := s.metadata.GetImage(ctx, req.ImageID)
	if err != nil {
		if metadata.IsNotFound(err) {
			return nil, nil, &Error{Status: 404, Code: CodeImageNotFound, Message: "Image not found"}
		}
		return nil, nil, internalError(err)
	}

	if apiErr := authorize(record, req.UserID, "access"); apiErr != nil {
		return nil, nil, apiErr
	}

	if req.Download {
		data, err := s.content.Get(ctx, record.StorageKey)
		if err != nil {
			if errors.Is(err, content.ErrBlobNotFound) {
				return nil, nil, &Error{
					Status:  404,
					Code:    CodeFileNotFound,
					Message: "Image file not found in storage",
				}
			}
			return nil, nil, internalError(err)
		}

		return nil, &DownloadResult{
			ImageID:     record.ImageID,
			Filename:    record.Filename,
			ContentType: record.ContentType,
			ImageData:   base64.StdEncoding.EncodeToString(data),
		}, nil
	}

	result := &GetResult{ImageView: viewOf(record)}

	url, err := s.content.PresignGet(ctx, record.StorageKey, s.cfg.PresignTTL)
	if err != nil {
		// Soft failure: metadata is still useful without a URL.
		logger.Warn("Failed to generate presigned URL for image %s: %v", record.ImageID, err)
	} else {
		result.DownloadURL = url
		result.URLExpiresIn = int64(s.cfg.PresignTTL.Seconds())
	}

	return result, nil, nil
}
