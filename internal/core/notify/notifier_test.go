package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Deliver(t *testing.T) {
	var got []string
	sender := SenderFunc(func(_ context.Context, text string) error {
		got = append(got, text)
		return nil
	})

	n := New(sender, zerolog.Nop())
	assert.True(t, n.Deliver(context.Background(), "first"))
	assert.True(t, n.Deliver(context.Background(), "second"))

	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, Stats{Delivered: 2}, n.Stats())
}

func TestNotifier_DeliverFailureIsContained(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	sender := SenderFunc(func(context.Context, string) error {
		calls++
		return errors.New("chat not found")
	})

	n := New(sender, zerolog.New(&buf))
	ok := n.Deliver(context.Background(), "hello")

	assert.False(t, ok)
	assert.Equal(t, 1, calls, "failed deliveries must not be retried")
	assert.Equal(t, Stats{Failed: 1}, n.Stats())

	out := buf.String()
	require.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, ErrDelivery.Error())
	assert.Contains(t, out, "chat not found")
}
