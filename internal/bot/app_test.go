package bot

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/hwbot/internal/core/config"
	"github.com/hay-kot/hwbot/internal/core/doctor"
	"github.com/hay-kot/hwbot/internal/core/homework"
)

func newTestApp(t *testing.T, body string, mutate func(*config.Config)) *App {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Credentials = config.Credentials{PracticumToken: "practicum-token"}
	if mutate != nil {
		mutate(&cfg)
	}

	app, err := New(&cfg)
	require.NoError(t, err)
	return app
}

func TestNew_InvalidFilter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Filters.Exclude = []string{"[unclosed"}

	_, err := New(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exclude")
}

func TestApp_Sender(t *testing.T) {
	app := newTestApp(t, `{"homeworks": []}`, nil)

	sender, err := app.Sender(true, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, sender)

	_, err = app.Sender(false, nil)
	require.ErrorIs(t, err, config.ErrConfigMissing)
}

func TestApp_Poller_RequiresToken(t *testing.T) {
	app := newTestApp(t, `{"homeworks": []}`, func(c *config.Config) {
		c.Credentials.PracticumToken = ""
	})

	_, err := app.Poller(nil)
	require.ErrorIs(t, err, config.ErrConfigMissing)
}

func TestApp_DryRunTick(t *testing.T) {
	app := newTestApp(t, `{"homeworks": [
		{"homework_name": "hw1", "status": "approved"},
		{"homework_name": "draft", "status": "reviewing"}
	]}`, func(c *config.Config) {
		c.Filters.Exclude = []string{"draft*"}
	})

	var out bytes.Buffer
	sender, err := app.Sender(true, &out)
	require.NoError(t, err)

	p, err := app.Poller(sender)
	require.NoError(t, err)

	it := p.Tick(context.Background())
	require.NoError(t, it.Err)
	assert.Equal(t, 1, it.Items)
	assert.Equal(t, 1, it.Skipped)
	assert.Equal(t, 1, it.Notified)
	assert.Contains(t, out.String(), `Изменился статус проверки работы "hw1".`)
	assert.NotContains(t, out.String(), "draft")

	out.Reset()
	it = p.Tick(context.Background())
	require.NoError(t, it.Err)
	assert.Zero(t, it.Notified)
	assert.Empty(t, out.String())
}

func TestApp_Check(t *testing.T) {
	app := newTestApp(t, `{"homeworks": [
		{"homework_name": "hw1", "status": "approved", "lesson_name": "Lesson 1"},
		{"status": "reviewing"},
		{"homework_name": "skip-me", "status": "rejected"}
	]}`, func(c *config.Config) {
		c.Filters.Exclude = []string{"skip-*"}
	})

	snap, err := app.Check(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, snap.Homeworks, 1)
	assert.Equal(t, homework.Item{Name: "hw1", Status: homework.StatusApproved, Lesson: "Lesson 1"}, snap.Homeworks[0])
	assert.Equal(t, 1, snap.Skipped)
	assert.Len(t, snap.Errors, 1)
}

func TestApp_Check_MalformedResponse(t *testing.T) {
	app := newTestApp(t, `{"nope": true}`, nil)

	_, err := app.Check(context.Background(), 0)
	require.ErrorIs(t, err, homework.ErrMalformedResponse)
}

func TestApp_Replay(t *testing.T) {
	app := newTestApp(t, `{"homeworks": []}`, nil)

	payloads := []any{
		map[string]any{"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "reviewing"},
		}},
		map[string]any{"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "reviewing"},
		}},
		"garbage",
		map[string]any{"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "approved"},
			map[string]any{"homework_name": "hw2", "status": "mystery"},
		}},
	}

	var got []string
	err := app.Replay(payloads, func(msg string) { got = append(got, msg) })
	require.ErrorIs(t, err, homework.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "payload 2")

	require.Len(t, got, 3)
	assert.Contains(t, got[0], "Работа взята на проверку ревьюером.")
	assert.Contains(t, got[1], "Работа проверена: ревьюеру всё понравилось. Ура!")
	assert.Equal(t, "unknown status received: mystery", got[2])
}

func TestDoctorService_RunChecks(t *testing.T) {
	app := newTestApp(t, `{"homeworks": []}`, nil)

	offline := app.Doctor.RunChecks(context.Background(), "", false, false)
	require.Len(t, offline, 2)

	online := app.Doctor.RunChecks(context.Background(), "", true, true)
	require.Len(t, online, 3)
	assert.Equal(t, "Status API", online[2].Name)

	_, _, failed := doctor.Summary(online)
	assert.Zero(t, failed)
}
