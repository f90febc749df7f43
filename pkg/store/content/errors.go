package content

import "errors"

// These errors provide a consistent way to indicate common failure
// conditions across content store implementations. The service layer checks
// for them with errors.Is and maps them to API error codes.
//
// Implementations wrap them with additional context:
//
//	return nil, fmt.Errorf("blob %s: %w", key, content.ErrBlobNotFound)

var (
	// ErrBlobNotFound indicates no object exists under the requested key.
	//
	// API mapping: 404 FILE_NOT_FOUND (distinct from a missing metadata
	// record, which is IMAGE_NOT_FOUND).
	ErrBlobNotFound = errors.New("blob not found")

	// ErrPresignNotSupported indicates the backend cannot mint presigned
	// URLs. The service treats this as a soft failure: metadata is still
	// returned, only the download URL is omitted.
	ErrPresignNotSupported = errors.New("presigned URLs not supported")
)
