package pagverde

import (
	"context"
	"net/http"
	"testing"
)

// fakeRequester records the last request routed through the Requester seam
// and answers with a canned 200.
type fakeRequester struct {
	req *Request
}

var _ Requester = (*fakeRequester)(nil)

func (f *fakeRequester) Do(ctx context.Context, req *Request) (*Response, error) {
	f.req = req
	return &Response{HTTPCode: http.StatusOK}, nil
}

func (f *fakeRequester) Get(ctx context.Context, path string, query ...Param) (*Response, error) {
	return f.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

func (f *fakeRequester) Post(ctx context.Context, path string, body Params) (*Response, error) {
	return f.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

func (f *fakeRequester) PostMultipart(ctx context.Context, path string, body Params) (*Response, error) {
	return f.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, Multipart: true})
}

func (f *fakeRequester) Put(ctx context.Context, path string, body Params) (*Response, error) {
	return f.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

func (f *fakeRequester) Delete(ctx context.Context, path string, query ...Param) (*Response, error) {
	return f.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// The resource helpers must run against any Requester, not just *Client;
// the services satisfy that by passing their embedded client. Resource
// method names like Get shadow the promoted verbs, so the service values
// themselves never implement Requester.
func TestResourceHelpersAcceptAnyRequester(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRequester{}

	if _, err := getCharge(ctx, fake, "ch_1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fake.req.Method != http.MethodGet || fake.req.Path != "/charges/ch_1" {
		t.Errorf("Expected GET /charges/ch_1, got %s %s", fake.req.Method, fake.req.Path)
	}

	if _, err := deleteAccount(ctx, fake, "acc_1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fake.req.Method != http.MethodDelete || fake.req.Path != "/accounts/acc_1" {
		t.Errorf("Expected DELETE /accounts/acc_1, got %s %s", fake.req.Method, fake.req.Path)
	}

	if _, err := uploadCompanyLogo(ctx, fake, Attachment{Filename: "logo.png"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !fake.req.Multipart || fake.req.Path != "/company/logo" {
		t.Errorf("Expected multipart POST /company/logo, got %+v", fake.req)
	}

	if _, err := updateSubscription(ctx, fake, "sub_1", Params{"amount": 9900}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fake.req.Method != http.MethodPut || fake.req.Path != "/subscriptions/sub_1" {
		t.Errorf("Expected PUT /subscriptions/sub_1, got %s %s", fake.req.Method, fake.req.Path)
	}
}

func TestServicesShareClient(t *testing.T) {
	client := New("tok")

	if client.Customers().Client != client {
		t.Error("Expected Customers service to wrap the same client")
	}
	if client.Charges().Client != client {
		t.Error("Expected Charges service to wrap the same client")
	}
	if client.Company().Client != client {
		t.Error("Expected Company service to wrap the same client")
	}
}
