// Package services wraps the backend endpoints used by the dashboard views:
// companies, job recommendations and auto-apply. Every call is checked
// against the current session before it reaches the network.
package services

// Authorizer is the view of the session that services need.
// session.Manager implements it.
type Authorizer interface {
	RequireAuth() error
	RequireAdmin() error
}
