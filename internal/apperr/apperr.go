// Package apperr holds the sentinel errors services return to the HTTP layer.
// The error strings double as user-facing messages, so they must stay safe to
// expose.
package apperr

import "errors"

var (
	// ErrDuplicateEmail is raised when the users unique-email constraint fires.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountBanned is returned on login for banned accounts, before any
	// password comparison result is exposed.
	ErrAccountBanned = errors.New("user account is banned")

	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")

	// ErrCannotBanUser collapses "no such user" and "target is an admin" into
	// one message, matching the single guarded UPDATE that enforces both.
	ErrCannotBanUser = errors.New("user not found or cannot ban admin users")

	// ErrNotYourProduct collapses "no such product" and "not the owner" so a
	// requester cannot probe which ids exist.
	ErrNotYourProduct = errors.New("product not found or you do not have permission to modify it")
)
