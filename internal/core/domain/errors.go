package domain

import "errors"

// Credential and token failures. ErrInvalidCredentials covers both an unknown
// email and a wrong password so the response never reveals which one it was.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// Authorization failures. ErrForbidden means the caller is authenticated but
// does not own the resource it is trying to mutate.
var ErrForbidden = errors.New("access forbidden")

// Resource lookups.
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrBidNotFound     = errors.New("bid not found")
)

// ErrUnavailable marks an infrastructure failure (store unreachable, timeout).
// It must never be collapsed into ErrInvalidCredentials.
var ErrUnavailable = errors.New("service unavailable")

// ErrRateLimited is returned when the attempt limiter rejects a request.
var ErrRateLimited = errors.New("too many requests")
