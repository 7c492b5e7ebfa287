package service

import "errors"

// Domain errors surfaced by the service layer. Handlers map these to HTTP
// statuses; storage failures pass through untouched and map to 500.
var (
	// ErrMissingUserFields is returned when registration input lacks a
	// required field. Maps to 400 Bad Request.
	ErrMissingUserFields = errors.New("username, email and password are required")

	// ErrWeakPassword is returned when the password fails the strength policy.
	// Maps to 400 Bad Request.
	ErrWeakPassword = errors.New("password must be at least 8 characters long, containing at least one letter, one number and one special character")

	// ErrMissingCredentials is returned when authentication input lacks email
	// or password. Maps to 400 Bad Request.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials is returned when no user matches the credentials.
	// Maps to 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingTransactionFields is returned when transaction input lacks
	// accountId, value, or type. Maps to 400 Bad Request.
	ErrMissingTransactionFields = errors.New("accountId, value and type are required")
)
