// Package poller runs the fetch, validate, diff, notify, sleep loop.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/hwbot/internal/core/homework"
	"github.com/hay-kot/hwbot/internal/core/logging"
	"github.com/hay-kot/hwbot/internal/core/notify"
	"github.com/hay-kot/hwbot/internal/integration/practicum"
)

// ErrPanic wraps a panic recovered inside an iteration.
var ErrPanic = errors.New("iteration panicked")

// DefaultInterval is the fixed sleep between iterations.
const DefaultInterval = 600 * time.Second

// State is the loop's current phase.
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateValidating State = "validating"
	StateDiffing    State = "diffing"
	StateNotifying  State = "notifying"
	StateSleeping   State = "sleeping"
)

// Fetcher returns the raw decoded payload for statuses changed since from.
type Fetcher interface {
	Fetch(ctx context.Context, from time.Time) (any, error)
}

// Deliverer sends notification text without surfacing failures.
type Deliverer interface {
	Deliver(ctx context.Context, message string) bool
}

var (
	_ Fetcher   = (*practicum.Client)(nil)
	_ Deliverer = (*notify.Notifier)(nil)
)

// Config wires a Poller.
type Config struct {
	Fetcher   Fetcher
	Notifier  Deliverer
	Tracker   *homework.Tracker   // defaults to a fresh tracker
	Filter    *homework.Filter    // nil admits every homework
	Formatter *homework.Formatter // used for failure reports

	Interval       time.Duration // defaults to DefaultInterval
	Lookback       time.Duration // first window starts this far before the first iteration
	ReportFailures bool          // deliver iteration failures to the chat

	Logger zerolog.Logger
}

// Iteration describes the outcome of one pass through the loop.
type Iteration struct {
	Cycle    uint64
	Start    time.Time
	From     time.Time
	Items    int // items passed to the tracker
	Skipped  int // items rejected by the filter
	Notified int // notifications handed to the notifier
	Failed   int // notifications the notifier could not deliver
	Err      error
}

// Poller owns the watermark and the tracker. It is single-goroutine; Run
// and Tick must not be called concurrently.
type Poller struct {
	fetcher   Fetcher
	notifier  Deliverer
	tracker   *homework.Tracker
	filter    *homework.Filter
	formatter *homework.Formatter

	interval       time.Duration
	lookback       time.Duration
	reportFailures bool

	log zerolog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	state       State
	cycle       uint64
	watermark   time.Time
	lastFailure string
}

// New creates a Poller.
func New(cfg Config) *Poller {
	if cfg.Tracker == nil {
		cfg.Tracker = homework.NewTracker(cfg.Formatter)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = homework.NewFormatter(homework.Templates{})
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}

	return &Poller{
		fetcher:        cfg.Fetcher,
		notifier:       cfg.Notifier,
		tracker:        cfg.Tracker,
		filter:         cfg.Filter,
		formatter:      cfg.Formatter,
		interval:       cfg.Interval,
		lookback:       cfg.Lookback,
		reportFailures: cfg.ReportFailures,
		log:            cfg.Logger,
		now:            time.Now,
		sleep:          sleepContext,
		state:          StateIdle,
	}
}

// Run polls until ctx is cancelled. Iteration errors are logged and never
// end the loop; cancellation is a clean shutdown and returns nil.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Dur("interval", p.interval).Msg("polling started")

	for {
		p.Tick(ctx)

		p.setState(ctx, StateSleeping)
		if err := p.sleep(ctx, p.interval); err != nil {
			p.log.Info().Uint64("cycles", p.cycle).Msg("polling stopped")
			return nil
		}
	}
}

// Tick runs a single iteration: fetch, validate, diff, notify, then advance
// the watermark to the iteration's start time whatever the outcome.
func (p *Poller) Tick(ctx context.Context) Iteration {
	p.cycle++
	start := p.now()
	ctx = logging.WithCycle(ctx, p.cycle)

	it := Iteration{
		Cycle: p.cycle,
		Start: start,
		From:  p.windowStart(start),
	}

	it.Err = p.process(ctx, &it)
	p.watermark = start

	p.report(ctx, it)
	return it
}

// State returns the loop's current phase.
func (p *Poller) State() State { return p.state }

// Watermark returns the start of the next query window. Zero before the
// first iteration.
func (p *Poller) Watermark() time.Time { return p.watermark }

func (p *Poller) windowStart(start time.Time) time.Time {
	if p.watermark.IsZero() {
		return start.Add(-p.lookback)
	}
	return p.watermark
}

func (p *Poller) process(ctx context.Context, it *Iteration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	p.setState(ctx, StateFetching)
	payload, err := p.fetcher.Fetch(ctx, it.From)
	if err != nil {
		return err
	}

	p.setState(ctx, StateValidating)
	items, validateErr := homework.ExtractHomeworks(payload)
	if errors.Is(validateErr, homework.ErrMalformedResponse) {
		return validateErr
	}
	if len(items) == 0 && validateErr == nil {
		p.log.Info().Ctx(ctx).Msg("empty homework list")
	}

	p.setState(ctx, StateDiffing)
	for _, item := range items {
		if !p.filter.Allow(item.Name) {
			it.Skipped++
			continue
		}
		it.Items++

		hctx := logging.WithHomework(ctx, item.Name)
		if !item.Status.Known() {
			p.log.Warn().
				Ctx(hctx).
				Err(fmt.Errorf("%w: %q", homework.ErrUnknownStatus, string(item.Status))).
				Msg("unknown status received")
		}

		msg, changed := p.tracker.Observe(item)
		if !changed {
			continue
		}

		p.setState(hctx, StateNotifying)
		it.Notified++
		if !p.notifier.Deliver(hctx, msg) {
			it.Failed++
		}
		p.setState(ctx, StateDiffing)
	}

	return validateErr
}

// report logs the iteration result and, when enabled, sends a failure report
// unless it repeats the previous one.
func (p *Poller) report(ctx context.Context, it Iteration) {
	if it.Err == nil {
		p.lastFailure = ""
		p.log.Debug().
			Ctx(ctx).
			Time("from", it.From).
			Int("items", it.Items).
			Int("skipped", it.Skipped).
			Int("notified", it.Notified).
			Int("failed", it.Failed).
			Msg("iteration complete")
		return
	}

	p.log.Error().
		Ctx(ctx).
		Err(it.Err).
		Str("kind", Kind(it.Err)).
		Time("from", it.From).
		Int("items", it.Items).
		Int("notified", it.Notified).
		Msg("iteration failed")

	if !p.reportFailures {
		return
	}

	msg := p.formatter.Failure(it.Err)
	if msg == p.lastFailure {
		return
	}
	p.lastFailure = msg
	p.notifier.Deliver(ctx, msg)
}

func (p *Poller) setState(ctx context.Context, s State) {
	if p.state == s {
		return
	}
	p.log.Trace().Ctx(ctx).Str("from", string(p.state)).Str("to", string(s)).Msg("state transition")
	p.state = s
}

// Kind names the failure class of an iteration error for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, practicum.ErrTransport):
		return "transport"
	case errors.Is(err, homework.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, homework.ErrMalformedItem):
		return "malformed_item"
	case errors.Is(err, ErrPanic):
		return "panic"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "unknown"
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
