package pagverde

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError reports invalid client configuration, such as an unknown
// environment selector or a missing resource ID.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// TransportError reports that the HTTP round trip itself failed: the request
// could not be built or sent, or the response body could not be read. No
// status code is available in this case.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodingError reports that a request payload could not be serialized.
// It is fatal for the call site; retrying with the same payload cannot help.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode request body: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// APIError represents an error response from the API. Message carries the
// platform text verbatim: the response "message" field when present, the
// "errors" list joined by CRLF otherwise, or a JSON dump of the whole
// response as a last resort. Error() returns Message unchanged because
// callers match on that exact text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAPIError checks if the error is an API status error.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsTransportError checks if the error is a transport-level failure.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsEncodingError checks if the error is a payload serialization failure.
func IsEncodingError(err error) bool {
	var e *EncodingError
	return errors.As(err, &e)
}

// IsNotFoundError checks if the error indicates a resource was not found.
func IsNotFoundError(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// IsUnauthorizedError checks if the error indicates a rejected or expired
// token (HTTP 401).
func IsUnauthorizedError(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusUnauthorized
}

// IsValidationError checks if the error indicates the platform rejected the
// payload (HTTP 422).
func IsValidationError(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusUnprocessableEntity
}

// IsRateLimitedError checks if the error indicates request throttling
// (HTTP 429).
func IsRateLimitedError(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusTooManyRequests
}

// IsServerError checks if the error indicates a platform-side failure
// (HTTP 5xx).
func IsServerError(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode >= 500 && e.StatusCode <= 599
}

// classifyResponse applies the uniform success/failure contract shared by
// every endpoint wrapper: 2xx is success, anything else becomes an
// *APIError with the message extracted through the fallback chain.
func classifyResponse(res *Response) error {
	if res.HTTPCode >= 200 && res.HTTPCode <= 299 {
		return nil
	}
	return &APIError{StatusCode: res.HTTPCode, Message: errorMessage(res)}
}

// errorMessage extracts a human-readable message from a failed response.
// Non-200 bodies are always decoded by the executor, so a structured error
// envelope arrives here as a map. The chain is message, then the errors
// list, then a JSON dump of the full result.
func errorMessage(res *Response) string {
	if body, ok := res.Body.(map[string]any); ok {
		if v, ok := body["message"]; ok && v != nil {
			if s, isString := v.(string); isString {
				return s
			}
			return fmt.Sprint(v)
		}
		if v, ok := body["errors"]; ok && v != nil {
			if list, isList := v.([]any); isList {
				return joinErrorList(list)
			}
		}
	}

	dump, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf("request failed with status %d", res.HTTPCode)
	}
	return string(dump)
}

// joinErrorList joins the API "errors" array with CRLF, the separator the
// platform documents for multi-error responses.
func joinErrorList(list []any) string {
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, "\r\n")
}
