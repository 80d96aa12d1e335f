package common

import "errors"

// ErrGuard is the umbrella for precondition failures: an action was invoked
// while the state that enables it was missing. Guard failures never reach
// the network. Match with errors.Is(err, ErrGuard).
var ErrGuard = errors.New("action not available")

var (
	ErrNotAuthenticated = NewGuardError("please sign in first")
	ErrNotAdmin         = NewGuardError("admin access required")
	ErrNoDocument       = NewGuardError("no CV loaded")
	ErrNoSelection      = NewGuardError("please select a company first")
	ErrEmptyText        = NewGuardError("nothing to enhance: summary is empty")
	ErrEnhanceInFlight  = NewGuardError("an enhancement is already in progress")
)

// GuardError describes a specific precondition failure.
type GuardError struct {
	Reason string
}

// NewGuardError returns a *GuardError for reason.
func NewGuardError(reason string) *GuardError {
	return &GuardError{Reason: reason}
}

func (e *GuardError) Error() string {
	return e.Reason
}

// Is makes every GuardError match ErrGuard.
func (e *GuardError) Is(target error) bool {
	return target == ErrGuard
}
