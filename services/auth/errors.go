package auth

import "errors"

var (
	// ErrEmailTaken signals a registration against an existing email.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled signals a login against a deactivated account.
	ErrAccountDisabled = errors.New("account is deactivated, contact an administrator")
	// ErrUserNotFound signals a token subject that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
