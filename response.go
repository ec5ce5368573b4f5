package pagverde

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestInfo captures timing and request details for a completed call. It is
// only populated when debug mode is on for the call.
type RequestInfo struct {
	Method         string      `json:"method"`
	URL            string      `json:"url"`
	Status         int         `json:"status"`
	TotalTime      float64     `json:"total_time"`
	RequestHeaders http.Header `json:"request_headers"`
}

// Response is the outcome of an API call. Body holds the decoded JSON payload
// (or the raw body as a string when decoding is off and the call succeeded),
// and HTTPCode the status the server answered with.
type Response struct {
	Body     any          `json:"body"`
	HTTPCode int          `json:"httpCode"`
	Info     *RequestInfo `json:"info,omitempty"`

	raw []byte
}

// Raw returns the unmodified response body bytes.
func (r *Response) Raw() []byte {
	return r.raw
}

// IsSuccess reports whether the call completed with a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.HTTPCode >= 200 && r.HTTPCode < 300
}

// Decode unmarshals the raw response body into v. Use it to map a successful
// call onto a concrete type instead of walking Body.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.raw, v); err != nil {
		return fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return nil
}

// newResponse builds a Response from the raw body and status code. When
// decode is true, or whenever the status is not 200, the body is parsed as
// JSON so error payloads stay inspectable even with decoding off; bodies
// that are not valid JSON are kept as plain strings.
func newResponse(raw []byte, status int, decode bool) *Response {
	res := &Response{HTTPCode: status, raw: raw}
	if decode || status != http.StatusOK {
		res.Body = parseBody(raw)
	} else {
		res.Body = string(raw)
	}
	return res
}

func parseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}
	return body
}
