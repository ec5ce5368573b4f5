package pagverde

import (
	"context"
	"net/url"
)

// Create submits a payment against a charge, e.g. a credit card
// authorization. Typical fields: charge_id, method and card fields.
func (s PaymentsService) Create(ctx context.Context, params Params) (*Response, error) {
	return createPayment(ctx, s.Client, params)
}

func createPayment(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/payments", params)
}

// List retrieves payments. Common filters: charge_id, status, page.
func (s PaymentsService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listPayments(ctx, s.Client, query)
}

func listPayments(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/payments", query...)
}

// Get retrieves a payment by ID.
func (s PaymentsService) Get(ctx context.Context, id string) (*Response, error) {
	return getPayment(ctx, s.Client, id)
}

func getPayment(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("payment", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/payments/"+url.PathEscape(id))
}

// Capture settles an authorized payment. Pass Params{"amount": n} to
// capture less than the authorized amount, in centavos.
func (s PaymentsService) Capture(ctx context.Context, id string, params Params) (*Response, error) {
	return capturePayment(ctx, s.Client, id, params)
}

func capturePayment(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("payment", id); err != nil {
		return nil, err
	}
	return r.Post(ctx, "/payments/"+url.PathEscape(id)+"/capture", params)
}

// Refund reverses a captured payment. Pass Params{"amount": n} for a
// partial refund in centavos; nil refunds the full amount.
func (s PaymentsService) Refund(ctx context.Context, id string, params Params) (*Response, error) {
	return refundPayment(ctx, s.Client, id, params)
}

func refundPayment(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("payment", id); err != nil {
		return nil, err
	}
	return r.Post(ctx, "/payments/"+url.PathEscape(id)+"/refund", params)
}
