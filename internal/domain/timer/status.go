package timer

import "time"

// ComputeStatus derives the display status of a timer at a given instant.
// The inactive toggle wins over everything else; evergreen timers have no
// calendar expiry at the record level (per-visitor expiry lives in the
// widget session clock).
func ComputeStatus(t *Timer, now time.Time) Status {
	if t == nil {
		return StatusUnknown
	}
	if !t.active {
		return StatusInactive
	}
	if t.kind == KindEvergreen {
		return StatusActive
	}
	if !t.hasValidWindow() {
		return StatusInvalid
	}
	switch {
	case now.Before(*t.startsAt):
		return StatusScheduled
	case now.After(*t.endsAt):
		return StatusExpired
	default:
		return StatusActive
	}
}

// showableAt reports whether the timer is time-eligible for public display.
// Malformed fixed windows are never eligible.
func (t *Timer) showableAt(now time.Time) bool {
	if !t.active {
		return false
	}
	if t.kind == KindEvergreen {
		return true
	}
	if !t.hasValidWindow() {
		return false
	}
	return !now.Before(*t.startsAt) && !now.After(*t.endsAt)
}
