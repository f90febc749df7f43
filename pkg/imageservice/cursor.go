package imageservice

import "encoding/base64"

// Pagination cursors are opaque to clients: the metadata store's native
// continuation key is wrapped in unpadded base64url for transport and never
// interpreted on the way back in. Validation is by parse; a token that does
// not decode is rejected with a dedicated pagination error instead of
// silently restarting the listing from the beginning.

// encodeCursor wraps a native continuation key for transport.
func encodeCursor(native []byte) string {
	return base64.RawURLEncoding.EncodeToString(native)
}

// decodeCursor unwraps a client-supplied cursor token.
func decodeCursor(token string) ([]byte, *Error) {
	native, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, &Error{
			Status:  400,
			Code:    CodeInvalidPagination,
			Message: "Invalid last_evaluated_key format",
		}
	}
	return native, nil
}
