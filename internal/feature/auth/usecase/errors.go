// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by handle or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that already
	// belongs to a user. A concurrent duplicate registration losing the
	// unique-constraint race receives this error too.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrUnauthenticated is the single outcome for every authentication
	// failure: unknown handle, wrong password, missing or invalid token.
	// Callers must not be able to tell these cases apart.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTokenIssuance is returned when signing an access token fails,
	// typically because of operator misconfiguration. It is distinct from
	// generic server errors so handlers can surface it separately.
	ErrTokenIssuance = errors.New("failed to issue access token")
)
