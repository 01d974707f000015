package notification

import "context"

// Notifier delivers out-of-band messages, today only the issued
// credentials after onboarding. A failed Send never rolls back the
// operation that triggered it.
type Notifier interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
