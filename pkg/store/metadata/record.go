package metadata

// ImageRecord is the metadata document stored for each uploaded image.
//
// One record exists per stored blob: the record is written after the blob on
// upload, and record deletion is the authoritative "image no longer exists"
// signal on delete. The StorageKey field locates the blob in the content
// store and is never serialized into list or metadata-read responses; only
// the service layer reads it.
//
// Optional fields (Title, Description, Tags, Location) are omitted from the
// stored document when absent rather than written as empty values.
type ImageRecord struct {
	// ImageID is the primary key, a UUID generated at upload time.
	ImageID string `json:"image_id"`

	// UserID identifies the uploading principal. Ownership is immutable;
	// authorization compares this field against the caller's claim.
	UserID string `json:"user_id"`

	// StorageKey locates the blob in the content store.
	StorageKey string `json:"s3_key"`

	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`

	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Location    string   `json:"location,omitempty"`

	// CreatedAt and UpdatedAt are ISO-8601 timestamps. Lexicographic
	// comparison of CreatedAt is used for date-range filtering.
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// HasTag reports whether the record carries the given tag (exact match).
func (r *ImageRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Predicate is a boolean filter over a record, applied by Scan after the
// store's own page boundary.
type Predicate func(*ImageRecord) bool
