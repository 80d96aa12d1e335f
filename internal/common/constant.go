// Package common contains constants and the precondition ("guard") error
// taxonomy shared by the jobdesk client layers.
package common

// Local storage keys for the persisted session.
const (
	AccessTokenKey = "access_token"
	AuthUserKey    = "auth_user"
)

// RequestIDHeaderName carries the per-request correlation id on outbound
// REST calls.
const RequestIDHeaderName = "X-Request-ID"
