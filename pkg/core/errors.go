package core

import "errors"

// Common errors. These are domain outcomes a caller can branch on with
// errors.Is; infrastructure failures are wrapped with context instead.
var (
	// ErrNoDocument means no notes file path has been configured yet.
	ErrNoDocument = errors.New("no notes file configured")
	// ErrNoCredential means no classifier credential has been configured.
	ErrNoCredential = errors.New("no classifier credential configured")
	// ErrEmptyDayKey flags a structural caller violation: a blank day key.
	ErrEmptyDayKey = errors.New("day key cannot be empty")
)
