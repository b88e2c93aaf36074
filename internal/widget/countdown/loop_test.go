//go:build unit

package countdown_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"timebar/internal/widget/countdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frameSink struct {
	mu     sync.Mutex
	frames []countdown.Frame
}

func (s *frameSink) add(f countdown.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
}

func (s *frameSink) all() []countdown.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]countdown.Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Fail(t, "condition not reached within "+timeout.String())
}

func TestLoop_TicksDownAndExpiresOnce(t *testing.T) {
	sink := &frameSink{}
	var expirations atomic.Int32

	loop := countdown.NewLoop(
		time.Now().Add(60*time.Millisecond),
		sink.add,
		func() { expirations.Add(1) },
		countdown.WithInterval(10*time.Millisecond),
	)
	loop.Start()
	defer loop.Stop()

	waitFor(t, time.Second, func() bool { return expirations.Load() == 1 })

	// give it a few more ticks: the expiry signal must not repeat
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), expirations.Load())

	frames := sink.all()
	require.NotEmpty(t, frames)
	last := frames[len(frames)-1]
	assert.Equal(t, time.Duration(0), last.Remaining, "final frame renders zero")
	assert.Equal(t, "0:00", last.Text)

	// after the expiry edge no further frames are rendered
	n := len(frames)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, len(sink.all()))
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	loop := countdown.NewLoop(time.Now().Add(time.Hour), nil, nil, countdown.WithInterval(10*time.Millisecond))
	loop.Start()

	loop.Stop()
	loop.Stop()

	// stopping before start is also safe
	idle := countdown.NewLoop(time.Now().Add(time.Hour), nil, nil)
	idle.Stop()
	idle.Stop()
}

func TestLoop_RendersImmediately(t *testing.T) {
	sink := &frameSink{}
	loop := countdown.NewLoop(
		time.Now().Add(time.Hour),
		sink.add,
		nil,
		countdown.WithInterval(time.Hour),
	)
	loop.Start()
	defer loop.Stop()

	waitFor(t, time.Second, func() bool { return len(sink.all()) >= 1 })
	first := sink.all()[0]
	assert.Greater(t, first.Remaining, time.Duration(0))
	assert.Equal(t, "59:59", first.Text)
}

func TestLoop_RetargetResumesAfterExpiry(t *testing.T) {
	sink := &frameSink{}
	var expirations atomic.Int32

	loop := countdown.NewLoop(
		time.Now().Add(30*time.Millisecond),
		sink.add,
		func() { expirations.Add(1) },
		countdown.WithInterval(10*time.Millisecond),
	)
	loop.Start()
	defer loop.Stop()

	waitFor(t, time.Second, func() bool { return expirations.Load() == 1 })

	loop.Retarget(time.Now().Add(40 * time.Millisecond))
	waitFor(t, time.Second, func() bool { return expirations.Load() == 2 })
}
