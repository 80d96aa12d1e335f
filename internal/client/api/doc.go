// Package api is the REST transport between the jobdesk client and its
// backend.
//
// # Overview
//
//  1. Narrow, consumer-shaped interfaces (AuthClient, CVClient,
//     CompanyClient, RecommendationClient, AutomationClient) composed into
//     Client. Services depend on the smallest one they need.
//  2. RESTClient, the net/http implementation. It JSON-encodes requests,
//     attaches the bearer token obtained from an injected TokenSource and a
//     fresh X-Request-ID, and decodes responses.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the status and the server's
// "detail" message (falling back to the HTTP status text). Transport
// failures wrap ErrUnavailable; 401/403 responses also match
// ErrUnauthorized via errors.Is.
package api
