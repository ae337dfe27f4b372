package service

import (
	"context"
	"time"
)

// OTPStore keeps one-time passwords with a time to live.
type OTPStore interface {
	// Save replaces any pending code for the phone.
	Save(ctx context.Context, phone, code string, ttl time.Duration) error

	// Consume deletes and reports a match. A wrong code leaves the pending code in place.
	Consume(ctx context.Context, phone, code string) (bool, error)
}

// SMSSender delivers text messages.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}
