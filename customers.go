package pagverde

import (
	"context"
	"net/url"
)

// Create registers a new customer. Typical fields: name, email, document
// (CPF or CNPJ digits), phone and a nested address map.
func (s CustomersService) Create(ctx context.Context, params Params) (*Response, error) {
	return createCustomer(ctx, s.Client, params)
}

func createCustomer(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/customers", params)
}

// List retrieves customers. Query parameters are passed through in order,
// e.g. Param{Name: "page", Value: 2}.
func (s CustomersService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listCustomers(ctx, s.Client, query)
}

func listCustomers(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/customers", query...)
}

// Get retrieves a customer by ID.
func (s CustomersService) Get(ctx context.Context, id string) (*Response, error) {
	return getCustomer(ctx, s.Client, id)
}

func getCustomer(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("customer", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/customers/"+url.PathEscape(id))
}

// Update changes a customer's registration data.
func (s CustomersService) Update(ctx context.Context, id string, params Params) (*Response, error) {
	return updateCustomer(ctx, s.Client, id, params)
}

func updateCustomer(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("customer", id); err != nil {
		return nil, err
	}
	return r.Put(ctx, "/customers/"+url.PathEscape(id), params)
}

// Delete removes a customer. The API refuses customers with open charges.
func (s CustomersService) Delete(ctx context.Context, id string) (*Response, error) {
	return deleteCustomer(ctx, s.Client, id)
}

func deleteCustomer(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("customer", id); err != nil {
		return nil, err
	}
	return r.Delete(ctx, "/customers/"+url.PathEscape(id))
}
