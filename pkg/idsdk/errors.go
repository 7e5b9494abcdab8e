package idsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared by the server and this SDK.
const (
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeDuplicateEmail  = "duplicate_email"
	ErrorCodeEmailNotFound   = "email_not_found"
	ErrorCodeInvalidPassword = "invalid_password"
	ErrorCodeMissingToken    = "missing_token"
	ErrorCodeInvalidToken    = "invalid_token"
	ErrorCodeServerError     = "server_error"
)

// APIError is the typed form of the service's error envelope. It implements
// the error interface and is returned by every SDK call that receives a
// non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "duplicate_email").
	Code string `json:"error"`

	// Description is a human-readable reason, safe to show to users.
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseError turns a non-2xx response body into an *APIError. Bodies that
// aren't the standard envelope fall back to a generic error carrying the
// status code.
func parseError(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        envelope.Error,
			Description: envelope.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  statusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
