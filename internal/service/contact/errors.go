package contact

import "errors"

var (
	// ErrMissingFields indicates one or more required inquiry fields are
	// empty after sanitization.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail indicates the reply address is not a plausible email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrRateLimited indicates the client exceeded the submission quota.
	ErrRateLimited = errors.New("too many submissions")

	// ErrNotConfigured indicates delivery credentials or the studio inbox
	// are missing, so no inquiry can be dispatched.
	ErrNotConfigured = errors.New("email delivery is not configured")

	// ErrDispatchFailed indicates the SMTP handoff failed.
	ErrDispatchFailed = errors.New("email dispatch failed")
)
