package pagverde

import (
	"context"
	"net/url"
)

// Create starts a subscription. Typical fields: customer_id, amount in
// centavos per cycle, interval (e.g. "monthly") and payment_method.
func (s SubscriptionsService) Create(ctx context.Context, params Params) (*Response, error) {
	return createSubscription(ctx, s.Client, params)
}

func createSubscription(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/subscriptions", params)
}

// List retrieves subscriptions. Common filters: status, customer_id, page.
func (s SubscriptionsService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listSubscriptions(ctx, s.Client, query)
}

func listSubscriptions(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/subscriptions", query...)
}

// Get retrieves a subscription by ID.
func (s SubscriptionsService) Get(ctx context.Context, id string) (*Response, error) {
	return getSubscription(ctx, s.Client, id)
}

func getSubscription(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("subscription", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/subscriptions/"+url.PathEscape(id))
}

// Update changes a subscription's billing fields. Cycles already invoiced
// are not affected.
func (s SubscriptionsService) Update(ctx context.Context, id string, params Params) (*Response, error) {
	return updateSubscription(ctx, s.Client, id, params)
}

func updateSubscription(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("subscription", id); err != nil {
		return nil, err
	}
	return r.Put(ctx, "/subscriptions/"+url.PathEscape(id), params)
}

// Cancel ends a subscription permanently.
func (s SubscriptionsService) Cancel(ctx context.Context, id string) (*Response, error) {
	return cancelSubscription(ctx, s.Client, id)
}

func cancelSubscription(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("subscription", id); err != nil {
		return nil, err
	}
	return r.Delete(ctx, "/subscriptions/"+url.PathEscape(id))
}

// Suspend pauses billing without canceling the subscription.
func (s SubscriptionsService) Suspend(ctx context.Context, id string) (*Response, error) {
	return suspendSubscription(ctx, s.Client, id)
}

func suspendSubscription(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("subscription", id); err != nil {
		return nil, err
	}
	return r.Post(ctx, "/subscriptions/"+url.PathEscape(id)+"/suspend", nil)
}

// Reactivate resumes billing on a suspended subscription.
func (s SubscriptionsService) Reactivate(ctx context.Context, id string) (*Response, error) {
	return reactivateSubscription(ctx, s.Client, id)
}

func reactivateSubscription(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("subscription", id); err != nil {
		return nil, err
	}
	return r.Post(ctx, "/subscriptions/"+url.PathEscape(id)+"/reactivate", nil)
}
