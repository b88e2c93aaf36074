// Package sessionclock owns the per-visitor countdown window of evergreen
// timers. The window start is persisted through an injected Store keyed by
// timer id, so the same visitor sees one continuous countdown across visits,
// and a fully elapsed window self-heals by rearming.
package sessionclock

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// keyPrefix namespaces stored entries. It must stay stable: changing it
// resets every visitor's window.
const keyPrefix = "timebar:evergreen:"

func key(timerID uuid.UUID) string {
	return keyPrefix + timerID.String()
}

// ResolveEndInstant returns the end of this visitor's countdown window for
// an evergreen timer, creating the window on first observation and rearming
// it once fully elapsed.
//
// Store failures are absorbed: the visitor gets a fresh, non-persisted
// window rather than an error. Two tabs racing a rearm may both write a
// slightly different start; last write wins and the drift self-corrects on
// the next expiry cycle.
func ResolveEndInstant(store Store, timerID uuid.UUID, durationMinutes int32, now time.Time) time.Time {
	duration := time.Duration(durationMinutes) * time.Minute
	start := now

	stored, ok, err := store.Get(key(timerID))
	if err != nil {
		slog.Debug("session store unavailable, using volatile window", "timer_id", timerID, "error", err)
		return start.Add(duration)
	}

	if ok {
		parsed, perr := time.Parse(time.RFC3339Nano, stored)
		if perr == nil && now.Sub(parsed) < duration {
			return parsed.Add(duration)
		}
		// elapsed or unreadable: fall through and rearm
	}

	if err := store.Set(key(timerID), start.Format(time.RFC3339Nano)); err != nil {
		slog.Debug("session store write failed, window will not persist", "timer_id", timerID, "error", err)
	}
	return start.Add(duration)
}
