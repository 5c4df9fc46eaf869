package auth

import (
	"errors"
)

var (
	// ErrRateLimited maps the backend's 429 on repeated OTP requests.
	ErrRateLimited = errors.New("too many OTP requests, try again later")

	ErrInvalidOtp = errors.New("invalid OTP")
	ErrExpiredOtp = errors.New("OTP has expired, request a new one")
)

// ValidationError names the form field that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
