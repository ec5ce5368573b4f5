package pagverde

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// SignatureHeader carries the hex HMAC-SHA256 signature of postback bodies.
const SignatureHeader = "X-Pagverde-Signature"

// maxPostbackBytes caps how much of a delivery body PostbackHandler reads.
// Platform events are small JSON envelopes.
const maxPostbackBytes = 1 << 20

// ErrInvalidSignature is returned when a postback signature does not match
// the body.
var ErrInvalidSignature = errors.New("postback signature mismatch")

// Postback is an event notification delivered to a merchant endpoint. Data
// is left raw so handlers can decode it into the type matching Event.
type Postback struct {
	Event     string          `json:"event"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// PostbackSignature computes the hex HMAC-SHA256 of body under the postback
// secret, the value the platform sends in X-Pagverde-Signature.
func PostbackSignature(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPostback checks signature against the raw body. The comparison is
// constant-time.
func VerifyPostback(secret string, body []byte, signature string) error {
	expected := PostbackSignature(secret, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// ParsePostback parses a raw postback body without verifying it.
func ParsePostback(body []byte) (*Postback, error) {
	var pb Postback
	if err := json.Unmarshal(body, &pb); err != nil {
		return nil, fmt.Errorf("failed to parse postback: %w", err)
	}
	return &pb, nil
}

// ParseAndVerifyPostback verifies the signature against the raw body, then
// parses it. Verification happens on the raw bytes, before any decoding.
func ParseAndVerifyPostback(secret string, body []byte, signature string) (*Postback, error) {
	if err := VerifyPostback(secret, body, signature); err != nil {
		return nil, err
	}
	return ParsePostback(body)
}

// PostbackHandler returns an http.HandlerFunc that verifies, parses and
// dispatches platform postbacks. Delivery bodies are capped at 1 MiB;
// oversized deliveries, invalid signatures and malformed bodies answer 400,
// and a handle error answers 500 so the platform retries delivery.
func PostbackHandler(secret string, handle func(ctx context.Context, pb *Postback) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPostbackBytes))
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}
		pb, err := ParseAndVerifyPostback(secret, body, r.Header.Get(SignatureHeader))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := handle(r.Context(), pb); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
