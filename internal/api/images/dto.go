package images

import "github.com/marmos91/imagevault/pkg/imageservice"

// uploadRequest is the JSON body of POST /images.
type uploadRequest struct {
	ImageData string                 `json:"image_data"`
	Filename  string                 `json:"filename"`
	UserID    string                 `json:"user_id"`
	Metadata  *imageservice.Metadata `json:"metadata"`
}
