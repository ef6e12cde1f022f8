package flash

import "errors"

// Common flash errors
var (
	// ErrInvalidFlash indicates the flash token is malformed or its signature doesn't match
	ErrInvalidFlash = errors.New("invalid flash token")

	// ErrExpiredFlash indicates the flash token outlived its TTL
	ErrExpiredFlash = errors.New("flash token has expired")

	// ErrSecretTooShort is returned when the signing secret is under 32 characters
	ErrSecretTooShort = errors.New("flash secret must be at least 32 characters")
)
