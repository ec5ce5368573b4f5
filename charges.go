package pagverde

import (
	"context"
	"net/url"
)

// Create issues a new charge. Typical fields: customer_id, amount in
// centavos, payment_method (boleto, credit_card or pix) and due_date.
func (s ChargesService) Create(ctx context.Context, params Params) (*Response, error) {
	return createCharge(ctx, s.Client, params)
}

func createCharge(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/charges", params)
}

// List retrieves charges. Common filters: status, customer_id, page.
func (s ChargesService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listCharges(ctx, s.Client, query)
}

func listCharges(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/charges", query...)
}

// Get retrieves a charge by ID.
func (s ChargesService) Get(ctx context.Context, id string) (*Response, error) {
	return getCharge(ctx, s.Client, id)
}

func getCharge(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("charge", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/charges/"+url.PathEscape(id))
}

// Cancel voids a pending charge. Paid charges must be refunded instead.
func (s ChargesService) Cancel(ctx context.Context, id string) (*Response, error) {
	return cancelCharge(ctx, s.Client, id)
}

func cancelCharge(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("charge", id); err != nil {
		return nil, err
	}
	return r.Delete(ctx, "/charges/"+url.PathEscape(id))
}

// Refund returns a paid charge to the customer. Pass Params{"amount": n}
// for a partial refund in centavos; nil refunds the full amount.
func (s ChargesService) Refund(ctx context.Context, id string, params Params) (*Response, error) {
	return refundCharge(ctx, s.Client, id, params)
}

func refundCharge(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("charge", id); err != nil {
		return nil, err
	}
	return r.Post(ctx, "/charges/"+url.PathEscape(id)+"/refund", params)
}
