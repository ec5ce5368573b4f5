package pagverde

import (
	"testing"
)

func TestNewResponseDecodePolicy(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		status   int
		decode   bool
		wantBody any
	}{
		{
			name:     "decode on parses 200",
			raw:      `{"id":"cus_1"}`,
			status:   200,
			decode:   true,
			wantBody: map[string]any{"id": "cus_1"},
		},
		{
			name:     "decode off keeps 200 raw",
			raw:      `{"id":"cus_1"}`,
			status:   200,
			decode:   false,
			wantBody: `{"id":"cus_1"}`,
		},
		{
			name:     "decode off still parses non-200",
			raw:      `{"message":"nope"}`,
			status:   404,
			decode:   false,
			wantBody: map[string]any{"message": "nope"},
		},
		{
			name:     "201 parsed regardless of decode flag",
			raw:      `{"id":"ch_9"}`,
			status:   201,
			decode:   false,
			wantBody: map[string]any{"id": "ch_9"},
		},
		{
			name:     "invalid JSON falls back to string",
			raw:      `<html>bad gateway</html>`,
			status:   502,
			decode:   true,
			wantBody: `<html>bad gateway</html>`,
		},
		{
			name:     "empty body decodes to nil",
			raw:      "",
			status:   204,
			decode:   true,
			wantBody: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newResponse([]byte(tt.raw), tt.status, tt.decode)
			if res.HTTPCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, res.HTTPCode)
			}

			switch want := tt.wantBody.(type) {
			case map[string]any:
				got, ok := res.Body.(map[string]any)
				if !ok {
					t.Fatalf("Expected map body, got %T", res.Body)
				}
				for k, v := range want {
					if got[k] != v {
						t.Errorf("Expected %s=%v, got %v", k, v, got[k])
					}
				}
			case string:
				if res.Body != want {
					t.Errorf("Expected body %q, got %v", want, res.Body)
				}
			case nil:
				if res.Body != nil {
					t.Errorf("Expected nil body, got %v", res.Body)
				}
			}
		})
	}
}

func TestResponseRaw(t *testing.T) {
	raw := []byte(`{"id":"tr_1"}`)
	res := newResponse(raw, 200, true)
	if string(res.Raw()) != string(raw) {
		t.Errorf("Expected raw %s, got %s", raw, res.Raw())
	}
}

func TestResponseIsSuccess(t *testing.T) {
	for _, status := range []int{200, 201, 204} {
		if !newResponse(nil, status, false).IsSuccess() {
			t.Errorf("Expected %d to be success", status)
		}
	}
	for _, status := range []int{199, 301, 404, 500} {
		if newResponse(nil, status, false).IsSuccess() {
			t.Errorf("Expected %d not to be success", status)
		}
	}
}

func TestResponseDecode(t *testing.T) {
	res := newResponse([]byte(`{"id":"cus_1","name":"Ana","document":"12345678901","created_at":"2026-01-10T12:00:00Z"}`), 200, true)

	var customer Customer
	if err := res.Decode(&customer); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if customer.ID != "cus_1" {
		t.Errorf("Expected ID cus_1, got %s", customer.ID)
	}
	if customer.Name != "Ana" {
		t.Errorf("Expected name Ana, got %s", customer.Name)
	}
}

func TestResponseDecodeInvalid(t *testing.T) {
	res := newResponse([]byte(`not json`), 200, false)
	var out map[string]any
	if err := res.Decode(&out); err == nil {
		t.Fatal("Expected decode error")
	}
}
