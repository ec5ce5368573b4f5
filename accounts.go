package pagverde

import (
	"context"
	"net/url"
)

// Create registers a sub-merchant account. Typical fields: name, email,
// document (CPF or CNPJ digits) and a nested bank_account map.
func (s AccountsService) Create(ctx context.Context, params Params) (*Response, error) {
	return createAccount(ctx, s.Client, params)
}

func createAccount(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Post(ctx, "/accounts", params)
}

// List retrieves sub-merchant accounts.
func (s AccountsService) List(ctx context.Context, query ...Param) (*Response, error) {
	return listAccounts(ctx, s.Client, query)
}

func listAccounts(ctx context.Context, r Requester, query []Param) (*Response, error) {
	return r.Get(ctx, "/accounts", query...)
}

// Get retrieves a sub-merchant account by ID.
func (s AccountsService) Get(ctx context.Context, id string) (*Response, error) {
	return getAccount(ctx, s.Client, id)
}

func getAccount(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("account", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, "/accounts/"+url.PathEscape(id))
}

// Update changes a sub-merchant account's registration data.
func (s AccountsService) Update(ctx context.Context, id string, params Params) (*Response, error) {
	return updateAccount(ctx, s.Client, id, params)
}

func updateAccount(ctx context.Context, r Requester, id string, params Params) (*Response, error) {
	if err := requireID("account", id); err != nil {
		return nil, err
	}
	return r.Put(ctx, "/accounts/"+url.PathEscape(id), params)
}

// Delete removes a sub-merchant account with no remaining balance.
func (s AccountsService) Delete(ctx context.Context, id string) (*Response, error) {
	return deleteAccount(ctx, s.Client, id)
}

func deleteAccount(ctx context.Context, r Requester, id string) (*Response, error) {
	if err := requireID("account", id); err != nil {
		return nil, err
	}
	return r.Delete(ctx, "/accounts/"+url.PathEscape(id))
}

// UploadDocument attaches a verification document to the account, sent as
// multipart/form-data. Extra fields in meta are flattened to bracketed keys,
// e.g. meta[type].
func (s AccountsService) UploadDocument(ctx context.Context, id string, doc Attachment, meta Params) (*Response, error) {
	return uploadAccountDocument(ctx, s.Client, id, doc, meta)
}

func uploadAccountDocument(ctx context.Context, r Requester, id string, doc Attachment, meta Params) (*Response, error) {
	if err := requireID("account", id); err != nil {
		return nil, err
	}
	body := Params{"document": doc}
	if len(meta) > 0 {
		body["meta"] = meta
	}
	return r.PostMultipart(ctx, "/accounts/"+url.PathEscape(id)+"/documents", body)
}
