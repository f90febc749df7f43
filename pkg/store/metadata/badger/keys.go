package badger

// Database Key Namespace Design
// ==============================
//
// BadgerDB is a key-value store, so we use a prefixed key to namespace image
// records away from any future data types. This design:
//   - Prevents key collisions if other record types are added later
//   - Enables efficient range scans over all images (prefix iteration)
//   - Makes the database structure self-documenting
//
// Key Namespace:
//
// Data Type       Prefix    Key Format        Value Type
// ========================================================
// Image Record    "img:"    img:<image_id>    ImageRecord (JSON)
//
// The image ID is a UUID v4 generated at upload time, so point lookups are
// O(1) and keys never collide. Listing iterates the "img:" prefix in key
// order; the scan continuation cursor is simply the last examined key, which
// a follow-up scan seeks past.

const (
	// prefixImage is the key prefix for image records
	prefixImage = "img:"
)

// keyImage generates the database key for an image record.
//
// Format: "img:<image_id>"
// Example: "img:550e8400-e29b-41d4-a716-446655440000"
func keyImage(imageID string) []byte {
	return []byte(prefixImage + imageID)
}

// keyImagePrefix returns the prefix for range scanning all image records.
func keyImagePrefix() []byte {
	return []byte(prefixImage)
}
