package pagverde

import "context"

// Requester is the request surface resource services depend on. It abstracts
// URL construction, encoding and HTTP execution behind the verb helpers, so
// service logic can be tested against a fake without a network.
//
// *Client implements Requester; services that only read can depend on a
// narrower hand-rolled interface in their own tests.
type Requester interface {
	// Do executes an arbitrary request and classifies the outcome. The
	// verb helpers below all reduce to Do.
	Do(ctx context.Context, req *Request) (*Response, error)

	// Get performs a GET request with ordered query parameters.
	Get(ctx context.Context, path string, query ...Param) (*Response, error)

	// Post performs a JSON POST request.
	Post(ctx context.Context, path string, body Params) (*Response, error)

	// PostMultipart performs a multipart/form-data POST request. Used for
	// document and image uploads.
	PostMultipart(ctx context.Context, path string, body Params) (*Response, error)

	// Put performs a JSON PUT request.
	Put(ctx context.Context, path string, body Params) (*Response, error)

	// Delete performs a DELETE request with ordered query parameters.
	Delete(ctx context.Context, path string, query ...Param) (*Response, error)
}
