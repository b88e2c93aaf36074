package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/pkg/clock"
	"timebar/internal/widget/countdown"
	"timebar/internal/widget/sessionclock"
)

const (
	// DefaultImpressionDelay debounces the impression report after the
	// first successful render.
	DefaultImpressionDelay = 2 * time.Second
	// DefaultRearmDelay spaces out evergreen relaunches so an expiry edge
	// never turns into a tight loop.
	DefaultRearmDelay = 1 * time.Second
)

// Context identifies where a widget instance is mounted.
type Context struct {
	Shop          string
	ProductID     string
	CollectionIDs []string
}

// Runtime is one widget instance. Instances on the same page are
// independent; each owns its render loop and fires at most one impression
// over its lifetime, re-renders and rearms included.
type Runtime struct {
	fetcher  TimerFetcher
	reporter ImpressionReporter
	store    sessionclock.Store
	clock    clock.Clock

	render func(countdown.Frame)
	onHide func()

	impressionDelay time.Duration
	rearmDelay      time.Duration
	tickInterval    time.Duration

	mu        sync.Mutex
	loop      *countdown.Loop
	pending   []*time.Timer
	unmounted bool

	impressionOnce sync.Once
}

type RuntimeOption func(*Runtime)

func WithImpressionDelay(d time.Duration) RuntimeOption {
	return func(r *Runtime) { r.impressionDelay = d }
}

func WithRearmDelay(d time.Duration) RuntimeOption {
	return func(r *Runtime) { r.rearmDelay = d }
}

func WithRuntimeClock(c clock.Clock) RuntimeOption {
	return func(r *Runtime) { r.clock = c }
}

// WithTickInterval shortens the render cadence. Test hook.
func WithTickInterval(d time.Duration) RuntimeOption {
	return func(r *Runtime) { r.tickInterval = d }
}

// NewRuntime wires a widget instance. render receives each displayed frame;
// onHide is invoked when a fixed timer expires (a fixed timer does not
// self-heal). Either callback may be nil.
func NewRuntime(fetcher TimerFetcher, reporter ImpressionReporter, store sessionclock.Store, render func(countdown.Frame), onHide func(), opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		fetcher:         fetcher,
		reporter:        reporter,
		store:           store,
		clock:           clock.NewRealClock(),
		render:          render,
		onHide:          onHide,
		impressionDelay: DefaultImpressionDelay,
		rearmDelay:      DefaultRearmDelay,
		tickInterval:    time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount fetches the timer for the context and starts the countdown.
// "No timer" and fetch failures both leave the host page untouched: the
// widget simply does not appear.
func (r *Runtime) Mount(ctx context.Context, wctx Context) {
	payload, err := r.fetcher.FetchTimer(ctx, wctx.Shop, wctx.ProductID, wctx.CollectionIDs)
	if err != nil {
		slog.Debug("timer fetch failed, widget stays hidden", "shop", wctx.Shop, "error", err)
		return
	}
	if payload == nil {
		return
	}

	now := r.clock.Now()
	var end time.Time
	switch timer.Kind(payload.Kind) {
	case timer.KindFixed:
		if payload.EndsAt == nil {
			return
		}
		end = *payload.EndsAt
	case timer.KindEvergreen:
		end = sessionclock.ResolveEndInstant(r.store, payload.ID, payload.DurationMinutes, now)
	default:
		return
	}

	r.mu.Lock()
	if r.unmounted || r.loop != nil {
		r.mu.Unlock()
		return
	}
	loop := countdown.NewLoop(end, r.render, func() { r.handleExpiry(payload) }, countdown.WithInterval(r.tickInterval), countdown.WithClock(r.clock))
	r.loop = loop
	r.mu.Unlock()

	loop.Start()
	r.scheduleImpression(wctx.Shop, payload)
}

// Unmount stops ticking and cancels pending work. Idempotent.
func (r *Runtime) Unmount() {
	r.mu.Lock()
	if r.unmounted {
		r.mu.Unlock()
		return
	}
	r.unmounted = true
	loop := r.loop
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, t := range pending {
		t.Stop()
	}
	if loop != nil {
		loop.Stop()
	}
}

func (r *Runtime) handleExpiry(payload *TimerPayload) {
	if timer.Kind(payload.Kind) == timer.KindFixed {
		if r.onHide != nil {
			r.onHide()
		}
		return
	}

	// evergreen: rearm after a short delay; the stored start is stale by
	// now, so the session clock hands out a fresh window
	r.schedule(r.rearmDelay, func() {
		end := sessionclock.ResolveEndInstant(r.store, payload.ID, payload.DurationMinutes, r.clock.Now())
		r.mu.Lock()
		loop := r.loop
		r.mu.Unlock()
		if loop != nil {
			loop.Retarget(end)
		}
	})
}

func (r *Runtime) scheduleImpression(shop string, payload *TimerPayload) {
	r.impressionOnce.Do(func() {
		r.schedule(r.impressionDelay, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.reporter.ReportImpression(ctx, shop, payload.ID); err != nil {
				slog.Debug("impression report failed", "timer_id", payload.ID, "error", err)
			}
		})
	})
}

func (r *Runtime) schedule(delay time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unmounted {
		return
	}
	r.pending = append(r.pending, time.AfterFunc(delay, fn))
}
