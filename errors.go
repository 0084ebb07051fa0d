package yandextranslate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrEmptyCredential is returned by the constructors when the API key
	// or IAM token is empty or whitespace-only.
	ErrEmptyCredential = errors.New("credential is empty")

	// ErrInvalidCredential is returned by the constructors when the API key
	// or IAM token contains bytes that cannot appear in an Authorization
	// header value.
	ErrInvalidCredential = errors.New("credential contains characters not allowed in a header value")

	// ErrEmptyInput is returned when a request carries no text to work on.
	// No network I/O is performed.
	ErrEmptyInput = errors.New("no input text")

	// ErrInvalidArgument is returned when a request field fails validation
	// before any network I/O, such as a missing target language code.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedResponse is returned when the API reports success but the
	// response body cannot be mapped to the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is returned when the API rejects a request with a non-success
// HTTP status. Message is extracted from the error body when the body
// matches the documented error shape, otherwise it describes the raw status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

// TransportError is returned when the HTTP round trip itself fails
// (connection refused, DNS failure, cancelled context). The underlying
// cause is preserved and available through Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// apiErrorBody is the documented error shape. Treated as best effort: only
// the message field is relied on.
type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
