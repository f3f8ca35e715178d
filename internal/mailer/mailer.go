// Package mailer renders and sends the admin notification email for a
// contact submission. Sending is a single synchronous call with no retry;
// a failed send is reported to the caller and nothing is rolled back.
package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the mailer is used without sender and
// admin addresses.
var ErrNotConfigured = errors.New("mailer: not configured")

// Email is one rendered message ready for dispatch.
type Email struct {
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer dispatches a rendered email to the configured admin address.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
