package pagverde

// Service accessors group Client methods by resource.
// Each service embeds *Client so the full request surface stays reachable.
// Resource methods like Get and Delete shadow the promoted verb helpers of
// the same name, so the wrappers hand the embedded Client, never the service
// value, to the request helpers.

type CompanyService struct{ *Client }

type CustomersService struct{ *Client }

type ChargesService struct{ *Client }

type SubscriptionsService struct{ *Client }

type PaymentsService struct{ *Client }

type TransfersService struct{ *Client }

type AccountsService struct{ *Client }

func (c *Client) Company() CompanyService {
	return CompanyService{c}
}

func (c *Client) Customers() CustomersService {
	return CustomersService{c}
}

func (c *Client) Charges() ChargesService {
	return ChargesService{c}
}

func (c *Client) Subscriptions() SubscriptionsService {
	return SubscriptionsService{c}
}

func (c *Client) Payments() PaymentsService {
	return PaymentsService{c}
}

func (c *Client) Transfers() TransfersService {
	return TransfersService{c}
}

func (c *Client) Accounts() AccountsService {
	return AccountsService{c}
}
