// Package notify delivers notification text to the configured chat.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrDelivery wraps any failure reported by a Sender.
var ErrDelivery = errors.New("notification delivery failed")

// Sender sends a text message to a single fixed destination.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, text string) error

func (f SenderFunc) Send(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Stats counts delivery outcomes since the notifier was created.
type Stats struct {
	Delivered int
	Failed    int
}

// Notifier wraps a Sender so that delivery failures are logged and never
// reach the caller. Failed messages are not retried.
type Notifier struct {
	sender Sender
	log    zerolog.Logger
	stats  Stats
}

// New creates a Notifier.
func New(sender Sender, log zerolog.Logger) *Notifier {
	return &Notifier{sender: sender, log: log}
}

// Deliver sends message and reports whether it was accepted.
func (n *Notifier) Deliver(ctx context.Context, message string) bool {
	if err := n.sender.Send(ctx, message); err != nil {
		n.stats.Failed++
		n.log.Error().
			Ctx(ctx).
			Err(fmt.Errorf("%w: %w", ErrDelivery, err)).
			Str("message", message).
			Msg("notification not sent")
		return false
	}

	n.stats.Delivered++
	n.log.Info().Ctx(ctx).Str("message", message).Msg("notification sent")
	return true
}

// Stats returns the delivery counters.
func (n *Notifier) Stats() Stats {
	return n.stats
}
