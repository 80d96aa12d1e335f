package session

import (
	"errors"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
)

// ErrAuth matches every *AuthError via errors.Is.
var ErrAuth = errors.New("authentication failed")

// AuthError reports a rejected or unreachable login/signup. Message is the
// server's detail when one was sent, otherwise a generic fallback.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func newAuthError(op, fallback string, err error) *AuthError {
	return &AuthError{Op: op, Message: api.DetailMessage(err, fallback), Err: err}
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuth }
