package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email/password pair does not
	// match a stored user. It deliberately does not reveal which half failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRememberToken is returned when a remember token is unknown,
	// of the wrong kind, or past its validity window.
	ErrInvalidRememberToken = errors.New("invalid remember token")

	// ErrResetCodeExpired is returned when a password-reset code is presented
	// more than one hour after issuance.
	ErrResetCodeExpired = errors.New("reset code expired")
)
