package pagverde

import "context"

// Get retrieves the company profile that owns the API token.
func (s CompanyService) Get(ctx context.Context) (*Response, error) {
	return getCompany(ctx, s.Client)
}

func getCompany(ctx context.Context, r Requester) (*Response, error) {
	return r.Get(ctx, "/company")
}

// Update changes the company profile.
func (s CompanyService) Update(ctx context.Context, params Params) (*Response, error) {
	return updateCompany(ctx, s.Client, params)
}

func updateCompany(ctx context.Context, r Requester, params Params) (*Response, error) {
	return r.Put(ctx, "/company", params)
}

// UploadLogo replaces the company logo, sent as multipart/form-data.
func (s CompanyService) UploadLogo(ctx context.Context, image Attachment) (*Response, error) {
	return uploadCompanyLogo(ctx, s.Client, image)
}

func uploadCompanyLogo(ctx context.Context, r Requester, image Attachment) (*Response, error) {
	return r.PostMultipart(ctx, "/company/logo", Params{"image": image})
}
