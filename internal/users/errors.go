package users

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a registration collides with an
	// existing account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
