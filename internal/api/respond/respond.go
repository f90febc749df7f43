// Package respond builds the service's uniform HTTP response envelopes.
//
// Success bodies are {"data": ..., "message": ...} with message omitted when
// empty; error bodies are {"error": {"message": ..., "code": ...}}. Every
// endpoint goes through these helpers so the envelope never drifts between
// handlers.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marmos91/imagevault/pkg/imageservice"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, data any, message string) {
	body := gin.H{"data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// Raw writes a bare JSON body without the data envelope. Used by the
// download path, whose payload is the response.
func Raw(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Error writes an error envelope from a service error, wrapping anything
// unexpected as INTERNAL_ERROR.
func Error(c *gin.Context, err error) {
	apiErr := imageservice.AsError(err)
	c.JSON(apiErr.Status, gin.H{"error": errorBody{
		Message: apiErr.Message,
		Code:    apiErr.Code,
	}})
}

// BadRequest writes a 400 error envelope with the given code and message.
func BadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Message: message,
		Code:    code,
	}})
}
