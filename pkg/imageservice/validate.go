package imageservice

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxIdentifierLength bounds image and user IDs.
const maxIdentifierLength = 128

// validate is the singleton validator instance used for metadata shape
// checks.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Metadata is the optional free-form metadata object accepted on upload.
// Absence of the whole object is valid; limits are enforced per field via
// struct tags.
type Metadata struct {
	Title       string   `json:"title" validate:"max=256"`
	Description string   `json:"description" validate:"max=2048"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=50"`
	Location    string   `json:"location"`
}

// validateImageID checks image ID shape. No side effects.
func validateImageID(imageID string) *Error {
	switch {
	case imageID == "":
		return &Error{Status: 400, Code: CodeInvalidImageID, Message: "Image ID is required"}
	case len(imageID) > maxIdentifierLength:
		return &Error{Status: 400, Code: CodeInvalidImageID, Message: "Image ID is too long"}
	}
	return nil
}

// validateUserID checks user ID shape. No side effects.
func validateUserID(userID string) *Error {
	switch {
	case userID == "":
		return &Error{Status: 400, Code: CodeInvalidUserID, Message: "User ID is required"}
	case len(userID) > maxIdentifierLength:
		return &Error{Status: 400, Code: CodeInvalidUserID, Message: "User ID is too long"}
	}
	return nil
}

// validateImageFile checks the transport encoding, size limit, and filename
// extension of an upload, returning the decoded payload and the lowercased
// extension on success. Runs before any store is touched.
func (s *Service) validateImageFile(imageData, filename string) ([]byte, string, *Error) {
	if imageData == "" {
		return nil, "", &Error{Status: 400, Code: CodeInvalidImage, Message: "Image data is required"}
	}
	if filename == "" {
		return nil, "", &Error{Status: 400, Code: CodeInvalidImage, Message: "Filename is required"}
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = strings.ToLower(filename[idx+1:])
	}
	if !s.allowedExtensions[ext] {
		return nil, "", &Error{
			Status: 400,
			Code:   CodeInvalidImage,
			Message: fmt.Sprintf("File extension %q not allowed. Allowed: %s",
				ext, strings.Join(s.cfg.AllowedExtensions, ", ")),
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, "", &Error{Status: 400, Code: CodeInvalidImage, Message: "Invalid base64 image data"}
	}

	if int64(len(decoded)) > s.cfg.MaxImageSizeBytes {
		return nil, "", &Error{
			Status: 400,
			Code:   CodeInvalidImage,
			Message: fmt.Sprintf("Image size exceeds maximum allowed size of %dMB",
				s.cfg.MaxImageSizeBytes/(1024*1024)),
		}
	}

	return decoded, ext, nil
}

// validateMetadata checks the optional metadata object against field limits.
// A nil metadata object is valid.
func validateMetadata(md *Metadata) *Error {
	if md == nil {
		return nil
	}

	if err := validate.Struct(md); err != nil {
		return &Error{Status: 400, Code: CodeInvalidMetadata, Message: metadataErrorMessage(err)}
	}

	return nil
}

// metadataErrorMessage converts the first validator error into the
// user-facing message for that field.
func metadataErrorMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "Invalid metadata"
	}

	e := validationErrs[0]
	switch {
	case e.StructField() == "Title":
		return "Title must be 256 characters or less"
	case e.StructField() == "Description":
		return "Description must be 2048 characters or less"
	case e.StructField() == "Tags":
		return "Maximum 20 tags allowed"
	case strings.HasPrefix(e.StructField(), "Tags["):
		return "Each tag must be a string of 50 characters or less"
	default:
		return "Invalid metadata"
	}
}
