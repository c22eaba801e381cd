package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Veraticus/wardrobe/internal/common"
)

// CodeAuthRequired is the backend error code for a missing or expired session.
const CodeAuthRequired = "AUTH_REQUIRED"

// ErrAuthRequired matches any APIError that signals a missing session.
var ErrAuthRequired = errors.New("authentication required")

// APIError is a failed backend response.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// Is lets errors.Is match ErrAuthRequired on authentication failures and
// common.ErrNotFound on 404s.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthRequired:
		return e.Code == CodeAuthRequired || e.Status == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Temporary reports whether retrying the request could succeed.
func (e *APIError) Temporary() bool {
	return e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

func newAPIError(status int, code, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("request failed: %d", status)
	}
	return &APIError{Status: status, Code: code, Message: message}
}
