package auth

import "errors"

// Caller-correctable failures (HTTP 400).
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrDuplicateEmail   = errors.New("email already in use")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalidOrExpired covers both a token that never existed and
	// one past its expiry; the caller cannot tell which.
	ErrTokenInvalidOrExpired = errors.New("token is invalid or expired")
)

// Dependency failures (HTTP 500). Nothing is retried inside the request;
// the caller retries.
var (
	ErrCredentialStoreUnavailable = errors.New("credential store unavailable")
	ErrSessionStoreUnavailable    = errors.New("session store unavailable")
	ErrEmailDeliveryFailed        = errors.New("failed to send email")
)
