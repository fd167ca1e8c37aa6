// Package console writes notifications to a stream instead of a chat.
package console

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Sender prints each message with a timestamp prefix. Used for dry runs.
type Sender struct {
	w   io.Writer
	now func() time.Time
}

// New creates a Sender writing to w.
func New(w io.Writer) *Sender {
	return &Sender{w: w, now: time.Now}
}

func (s *Sender) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintf(s.w, "[%s] %s\n", s.now().Format(time.DateTime), text)
	return err
}
