// Package tequila is a typed client for the Tequila flight search and
// booking API.
//
// The API is split into four facades obtained from a Client:
//
//	client, err := tequila.New(tequila.Config{APIKey: apiKey})
//	if err != nil {
//		return err
//	}
//
//	locations, err := client.Location().SearchByQuery(ctx, tequila.SearchByQueryParams{Term: "PRG"})
//
// Every method issues exactly one request. Nothing is validated, retried or
// cached locally; parameters are forwarded as they are and the decoded body
// is returned unchanged. A non-2xx answer is returned as an APIError value
// reachable with errors.As.
package tequila
