// Package bot wires configuration into the services the commands consume.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hay-kot/hwbot/internal/core/config"
	"github.com/hay-kot/hwbot/internal/core/homework"
	"github.com/hay-kot/hwbot/internal/core/logging"
	"github.com/hay-kot/hwbot/internal/core/notify"
	"github.com/hay-kot/hwbot/internal/integration/console"
	"github.com/hay-kot/hwbot/internal/integration/practicum"
	"github.com/hay-kot/hwbot/internal/integration/telegram"
	"github.com/hay-kot/hwbot/internal/poller"
)

// App is the central entry point for bot operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Config    *config.Config
	Client    *practicum.Client
	Formatter *homework.Formatter
	Filter    *homework.Filter
	Doctor    *DoctorService
}

// New constructs an App from a loaded config. Credentials are not checked
// here; each operation requires what it needs.
func New(cfg *config.Config) (*App, error) {
	filter, err := homework.NewFilter(cfg.Filters.Include, cfg.Filters.Exclude)
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}

	client := practicum.New(
		cfg.Endpoint,
		cfg.Credentials.PracticumToken,
		cfg.Poll.Timeout,
		logging.Component("practicum"),
	)

	return &App{
		Config:    cfg,
		Client:    client,
		Formatter: homework.NewFormatter(cfg.Messages.Templates()),
		Filter:    filter,
		Doctor:    NewDoctorService(cfg, client),
	}, nil
}

// Sender returns the message sink: the configured Telegram chat, or out
// when dryRun is set.
func (a *App) Sender(dryRun bool, out io.Writer) (notify.Sender, error) {
	if dryRun {
		return console.New(out), nil
	}

	if err := a.Config.Credentials.Require(true); err != nil {
		return nil, err
	}

	return telegram.New(telegram.Options{
		APIURL:  a.Config.Telegram.APIURL,
		Token:   a.Config.Credentials.TelegramToken,
		ChatID:  a.Config.Credentials.ChatID,
		Timeout: a.Config.Telegram.Timeout,
	})
}

// Poller builds the polling loop delivering through sender. Returns an error
// wrapping config.ErrConfigMissing when the API token is absent.
func (a *App) Poller(sender notify.Sender) (*poller.Poller, error) {
	if err := a.Config.Credentials.Require(false); err != nil {
		return nil, err
	}

	return poller.New(poller.Config{
		Fetcher:        a.Client,
		Notifier:       notify.New(sender, logging.Component("notify")),
		Tracker:        homework.NewTracker(a.Formatter),
		Filter:         a.Filter,
		Formatter:      a.Formatter,
		Interval:       a.Config.Poll.Interval,
		Lookback:       a.Config.Poll.Lookback,
		ReportFailures: a.Config.Notify.Errors,
		Logger:         logging.Component("poller"),
	}), nil
}

// Snapshot is the result of a one-off status query.
type Snapshot struct {
	From      time.Time       `json:"from"`
	Homeworks []homework.Item `json:"homeworks"`
	Skipped   int             `json:"skipped"`
	Errors    []string        `json:"errors,omitempty"`
}

// Check fetches statuses changed within since and validates them without
// notifying anyone. Malformed items are listed in Snapshot.Errors.
func (a *App) Check(ctx context.Context, since time.Duration) (Snapshot, error) {
	if err := a.Config.Credentials.Require(false); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{From: time.Now().Add(-since), Homeworks: []homework.Item{}}

	payload, err := a.Client.Fetch(ctx, snap.From)
	if err != nil {
		return snap, err
	}

	items, err := homework.ExtractHomeworks(payload)
	if errors.Is(err, homework.ErrMalformedResponse) {
		return snap, err
	}
	snap.Errors = unwrapAll(err)

	for _, item := range items {
		if !a.Filter.Allow(item.Name) {
			snap.Skipped++
			continue
		}
		snap.Homeworks = append(snap.Homeworks, item)
	}

	return snap, nil
}

// Replay runs recorded payloads through validation, filtering and a fresh
// tracker in order, calling emit for every notification that would be sent.
// Malformed payloads and items are collected into the returned error; the
// remaining payloads are still processed.
func (a *App) Replay(payloads []any, emit func(message string)) error {
	tracker := homework.NewTracker(a.Formatter)

	var errs []error
	for i, payload := range payloads {
		items, err := homework.ExtractHomeworks(payload)
		if err != nil {
			errs = append(errs, fmt.Errorf("payload %d: %w", i, err))
		}

		for _, item := range items {
			if !a.Filter.Allow(item.Name) {
				continue
			}
			if msg, changed := tracker.Observe(item); changed {
				emit(msg)
			}
		}
	}

	return errors.Join(errs...)
}

func unwrapAll(err error) []string {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, e.Error())
	}
	return out
}
