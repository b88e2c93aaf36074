// Package countdown owns the ticking display of a timer: a steady once-per-
// second render of the remaining duration, and the detection of the expiry
// edge. It carries no business rules; what happens on expiry (hide vs rearm)
// belongs to the owner.
package countdown

import (
	"sync"
	"time"

	"timebar/internal/pkg/clock"
)

// Frame is one rendered tick.
type Frame struct {
	Remaining time.Duration
	Text      string
}

// Loop drives a countdown against a target end instant. It renders a frame
// immediately on Start and then once per interval, and fires the expiry
// callback exactly once per target when the remaining duration reaches zero,
// after which ticking stops until Retarget or Stop.
type Loop struct {
	mu       sync.Mutex
	end      time.Time
	interval time.Duration
	clock    clock.Clock
	render   func(Frame)
	onExpire func()

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	wake    chan struct{}
}

type Option func(*Loop)

// WithInterval overrides the 1 Hz tick cadence. Test hook.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithClock overrides the time source. Test hook.
func WithClock(c clock.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

func NewLoop(end time.Time, render func(Frame), onExpire func(), opts ...Option) *Loop {
	l := &Loop{
		end:      end,
		interval: time.Second,
		clock:    clock.NewRealClock(),
		render:   render,
		onExpire: onExpire,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start launches the tick goroutine. Calling Start twice is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	go l.run()
}

// Stop halts ticking and is safe to call any number of times, including
// before Start and concurrently with expiry.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.stopCh)
	started := l.started
	l.mu.Unlock()

	if started {
		<-l.doneCh
	}
}

// Retarget points the loop at a new end instant and resumes ticking if the
// previous target already expired. Used on evergreen rearm.
func (l *Loop) Retarget(end time.Time) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.end = end
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) target() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.end
}

func (l *Loop) run() {
	defer close(l.doneCh)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	expiredFor := time.Time{}
	for {
		end := l.target()
		if !end.Equal(expiredFor) {
			remaining := Remaining(end, l.clock.Now())
			l.emit(remaining)
			if remaining == 0 {
				expiredFor = end
				if l.onExpire != nil {
					l.onExpire()
				}
			}
		}

		select {
		case <-l.stopCh:
			return
		case <-l.wake:
		case <-ticker.C:
		}
	}
}

func (l *Loop) emit(remaining time.Duration) {
	if l.render == nil {
		return
	}
	l.render(Frame{Remaining: remaining, Text: Format(remaining)})
}
