package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrInactiveUser is returned when a soft-disabled account presents valid
	// credentials or a valid token.
	ErrInactiveUser = errors.New("user account is inactive")

	// Typed token verification failures. Callers choose different user-facing
	// copy and different cookie cleanup for each.
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenInvalid   = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
