// Package relay implements the shared routing-and-delivery core used by
// both ingress adapters.
package relay

import (
	"context"
	"fmt"
)

// Destination identifies the chat a notification is delivered into.
// ThreadID is zero when the message goes to the top-level chat rather
// than a forum thread.
type Destination struct {
	ChatID   int64
	ThreadID int64
}

// HasThread reports whether the destination targets a forum thread.
func (d Destination) HasThread() bool {
	return d.ThreadID != 0
}

// Resolver maps an opaque webhook identifier to its registered destination.
// Implementations return ErrUnknownWebhook when no registration matches and
// a *StorageError when the registry backend itself fails.
type Resolver interface {
	Resolve(ctx context.Context, webhookID string) (Destination, error)
}

// Notifier performs the final send to the messaging backend. A failed send
// returns a *DeliveryError; exactly one message is sent per successful call.
type Notifier interface {
	Send(ctx context.Context, dest Destination, text string) error
}

// Service is the single delivery path both ingress adapters converge on.
type Service struct {
	notifier Notifier
}

// NewService creates the shared format-and-deliver service.
func NewService(notifier Notifier) *Service {
	return &Service{notifier: notifier}
}

// Relay formats the event fields into a notification and dispatches it to
// the destination. One attempt, no retry; the caller decides what to do
// with a failure.
func (s *Service) Relay(ctx context.Context, dest Destination, author, authorURL, message, comment string) error {
	text := Format(author, authorURL, message, comment)
	if err := s.notifier.Send(ctx, dest, text); err != nil {
		return fmt.Errorf("deliver to chat %d: %w", dest.ChatID, err)
	}
	return nil
}
