package auth

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCredential is the single generic failure for a wrong secret.
// There is only one admin identity, so nothing more specific ever leaks.
var ErrInvalidCredential = errors.New("invalid credentials")

// ErrWeakSecret is returned when a replacement secret is too short.
var ErrWeakSecret = errors.New("new password must be at least 8 characters")

// RateLimitedError signals that the client must wait before retrying.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("too many attempts; retry after %ds", int(e.RetryAfter.Seconds()))
}
