package pagverde

import (
	"context"
	"net/url"
)

// Create schedules a payout to a bank account. Typical fields: amount in
// centavos, a nested bank_account map and an optional scheduled_to date.
func (s TransfersService) Create(ctx context.Context, params Params) (*Response, error) {
	return createTransfer(ctx, s.Client, params)
}

func createTransfer(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/transfers", params)
}

// List retrieves transfers. Common filters: status, page.
func (s TransfersService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listTransfers(ctx, s.Client, query)
}

func listTransfers(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/transfers", query...)
}

// Get retrieves a transfer by ID.
func (s TransfersService) Get(ctx context.Context, id string) (*Response, error) {
	return getTransfer(ctx, s.Client, id)
}

func getTransfer(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("transfer", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/transfers/"+url.PathEscape(id))
}

// Cancel aborts a transfer that has not been processed yet.
func (s TransfersService) Cancel(ctx context.Context, id string) (*Response, error) {
	return cancelTransfer(ctx, s.Client, id)
}

func cancelTransfer(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("transfer", id); err != nil {
		return nil, err
	}
	return r.Delete(ctx, "/transfers/"+url.PathEscape(id))
}
