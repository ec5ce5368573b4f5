// Package pagverde provides a client for the PagVerde payment-processing API.
//
// The client covers the billing resources exposed by the platform: the
// merchant company, customers, charges, subscriptions, card payments,
// transfers and sub-accounts. Every resource method forwards to one shared
// request engine that resolves the environment base URL, encodes query
// parameters and request bodies (JSON or multipart form data for upload
// endpoints), executes a single HTTP round trip and classifies the response.
//
// # Authentication
//
// All requests carry the merchant API token as a bearer credential:
//
//	Authorization: Bearer <token>
//
// Obtaining or refreshing tokens is outside the scope of this package.
//
// # Basic Usage
//
//	client := pagverde.New("your-api-token",
//	    pagverde.WithEnvironment(pagverde.Sandbox),
//	)
//
//	res, err := client.Customers().Create(ctx, pagverde.Params{
//	    "name":     "Maria Souza",
//	    "document": "12345678909",
//	})
//	if err != nil {
//	    // *pagverde.APIError carries the status code and the
//	    // message extracted from the API response.
//	}
//
//	var customer pagverde.Customer
//	if err := res.Decode(&customer); err != nil {
//	    // ...
//	}
//
// # Environments
//
// The target environment selects the API base URL. Production is the
// default; Sandbox should be used for integration testing. A client can
// also be built from PAGVERDE_* environment variables with NewFromEnv.
//
// # Errors
//
// Failures are returned as one of *ConfigError, *EncodingError,
// *TransportError or *APIError. API errors preserve the platform's
// message verbatim: the "message" field when present, the "errors" list
// joined by CRLF otherwise, or a JSON dump of the whole response as a
// last resort.
package pagverde
