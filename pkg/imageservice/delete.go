package imageservice

import (
	"context"

	"github.com/marmos91/imagevault/internal/logger"
	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// DeleteRequest carries the parameters of DELETE /images/{image_id}.
type DeleteRequest struct {
	ImageID string

	// UserID is the caller's optional identity claim. Empty skips the
	// ownership check (documented bypass, see authorize).
	UserID string
}

// DeleteResult is the success payload of a delete. BlobDeleteErr records a
// blob-store failure that was tolerated; it is surfaced in the result type
// so callers can log it, but it is not serialized and never fails the
// operation.
type DeleteResult struct {
	ImageID string `json:"image_id"`
	Deleted bool   `json:"deleted"`

	BlobDeleteErr error `json:"-"`
}

// Delete removes an image: gate order is lookup (404), ownership check
// (403), blob delete, record delete.
//
// Failure handling is deliberately asymmetric. A blob-delete failure is
// logged and tolerated; the record delete proceeds, accepting a possible
// orphaned blob. A record-delete failure propagates as the operation's
// error, because record deletion is the authoritative "does this image
// exist" signal. A record that vanishes between lookup and delete counts as
// already deleted.
func (s *Service) Delete(ctx context.Context, req DeleteRequest) (*DeleteResult, error) {
	if apiErr := validateImageID(req.ImageID); apiErr != nil {
		return nil, apiErr
	}

	record, err := s.metadata.GetImage(ctx, req.ImageID)
	if err != nil {
		if metadata.IsNotFound(err) {
			return nil, &Error{Status: 404, Code: CodeImageNotFound, Message: "Image not found"}
		}
		return nil, internalError(err)
	}

	if apiErr := authorize(record, req.UserID, "delete"); apiErr != nil {
		return nil, apiErr
	}

	result := &DeleteResult{ImageID: req.ImageID}

	if err := s.content.Delete(ctx, record.StorageKey); err != nil {
		logger.Warn("Could not delete blob %s: %v", record.StorageKey, err)
		result.BlobDeleteErr = err
	}

	if err := s.metadata.DeleteImage(ctx, req.ImageID); err != nil && !metadata.IsNotFound(err) {
		return nil, internalError(err)
	}

	result.Deleted = true
	return result, nil
}
