package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/hwbot/internal/core/config"
)

type staticCheck struct {
	name  string
	items []CheckItem
}

func (c staticCheck) Name() string { return c.name }

func (c staticCheck) Run(_ context.Context) Result {
	return Result{Name: c.name, Items: c.items}
}

func TestRunAllAndSummary(t *testing.T) {
	checks := []Check{
		staticCheck{name: "a", items: []CheckItem{{Status: StatusPass}, {Status: StatusWarn}}},
		staticCheck{name: "b", items: []CheckItem{{Status: StatusFail}, {Status: StatusPass}}},
	}

	results := RunAll(context.Background(), checks)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestCredentialsCheck(t *testing.T) {
	tests := []struct {
		name         string
		creds        config.Credentials
		withTelegram bool
		want         []Status
	}{
		{
			name:         "all present",
			creds:        config.Credentials{PracticumToken: "practicum-secret", TelegramToken: "telegram-secret", ChatID: "42"},
			withTelegram: true,
			want:         []Status{StatusPass, StatusPass, StatusPass},
		},
		{
			name:         "telegram missing fails",
			creds:        config.Credentials{PracticumToken: "practicum-secret"},
			withTelegram: true,
			want:         []Status{StatusPass, StatusFail, StatusFail},
		},
		{
			name:  "telegram missing warns on dry run",
			creds: config.Credentials{PracticumToken: "practicum-secret"},
			want:  []Status{StatusPass, StatusWarn, StatusWarn},
		},
		{
			name: "practicum missing always fails",
			want: []Status{StatusFail, StatusWarn, StatusWarn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewCredentialsCheck(tt.creds, tt.withTelegram).Run(context.Background())
			require.Len(t, result.Items, len(tt.want))
			for i, status := range tt.want {
				assert.Equal(t, status, result.Items[i].Status, result.Items[i].Label)
			}
		})
	}
}

func TestCredentialsCheck_MasksSecrets(t *testing.T) {
	creds := config.Credentials{PracticumToken: "practicum-secret", TelegramToken: "telegram-secret", ChatID: "42"}
	result := NewCredentialsCheck(creds, true).Run(context.Background())

	for _, item := range result.Items {
		assert.NotContains(t, item.Detail, "secret")
	}
	assert.Equal(t, "42", result.Items[2].Detail)
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("poll:\n  interval: 15m\n"), 0o644))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("poll:\n  interval: 1ms\n"), 0o644))

	short := filepath.Join(dir, "short.yaml")
	require.NoError(t, os.WriteFile(short, []byte("poll:\n  interval: 1m\n"), 0o644))

	tests := []struct {
		name      string
		path      string
		wantLast  Status
		wantItems int
	}{
		{name: "missing file uses defaults", path: filepath.Join(dir, "nope.yaml"), wantLast: StatusPass, wantItems: 3},
		{name: "valid file", path: valid, wantLast: StatusPass, wantItems: 3},
		{name: "short interval warns", path: short, wantLast: StatusWarn, wantItems: 3},
		{name: "invalid settings", path: invalid, wantLast: StatusFail, wantItems: 2},
		{name: "directory", path: dir, wantLast: StatusFail, wantItems: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewConfigCheck(tt.path).Run(context.Background())
			require.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, tt.wantLast, result.Items[len(result.Items)-1].Status)
		})
	}
}

type fetcherFunc func(ctx context.Context, from time.Time) (any, error)

func (f fetcherFunc) Fetch(ctx context.Context, from time.Time) (any, error) {
	return f(ctx, from)
}

func TestAPICheck(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		err     error
		want    []Status
	}{
		{
			name: "transport failure",
			err:  errors.New("connection refused"),
			want: []Status{StatusFail},
		},
		{
			name:    "malformed response",
			payload: map[string]any{"foo": 1},
			want:    []Status{StatusPass, StatusFail},
		},
		{
			name: "partially malformed",
			payload: map[string]any{"homeworks": []any{
				map[string]any{"homework_name": "hw1", "status": "approved"},
				"junk",
			}},
			want: []Status{StatusPass, StatusWarn},
		},
		{
			name:    "empty list",
			payload: map[string]any{"homeworks": []any{}},
			want:    []Status{StatusPass, StatusPass},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFrom time.Time
			fetcher := fetcherFunc(func(_ context.Context, from time.Time) (any, error) {
				gotFrom = from
				return tt.payload, tt.err
			})

			result := NewAPICheck(fetcher, time.Hour).Run(context.Background())
			require.Len(t, result.Items, len(tt.want))
			for i, status := range tt.want {
				assert.Equal(t, status, result.Items[i].Status)
			}
			assert.WithinDuration(t, time.Now().Add(-time.Hour), gotFrom, time.Minute)
		})
	}
}
