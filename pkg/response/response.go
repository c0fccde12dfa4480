package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the success envelope returned by every endpoint.
// The HTTP status code is mirrored in the body.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// APIError is the failure envelope. It implements error so usecases can
// return it directly and delivery can map it with errors.As.
type APIError struct {
	Status       int    `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

func (e *APIError) Error() string {
	return e.ErrorMessage
}

func NewBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, ErrorMessage: message}
}

func NewUnauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, ErrorMessage: message}
}

func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, ErrorMessage: message}
}

func NewConflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, ErrorMessage: message}
}

// NewEmailDelivery reports an outbound email failure as a server fault.
func NewEmailDelivery(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, ErrorMessage: message}
}

// JSON writes the success envelope with the given status code.
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{Status: status, Message: message, Data: data})
}

// Error writes the failure envelope for err. Unknown errors are logged and
// converted to a generic 500 so internals never reach the client.
func Error(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr)
		return
	}

	slog.Error("unexpected error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, &APIError{
		Status:       http.StatusInternalServerError,
		ErrorMessage: "Something went wrong.",
	})
}
