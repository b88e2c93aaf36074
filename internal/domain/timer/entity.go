package timer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Timer is one merchant-configured countdown. Which window fields are
// meaningful depends on kind: a fixed timer carries absolute start/end
// instants shared by all visitors, an evergreen timer carries a duration
// relative to each visitor's first observation.
type Timer struct {
	id              uuid.UUID
	shopID          uuid.UUID
	kind            Kind
	startsAt        *time.Time
	endsAt          *time.Time
	durationMinutes int32
	targeting       Targeting
	appearance      json.RawMessage
	active          bool
	impressions     int64
	createdAt       time.Time
	updatedAt       time.Time
}

// NewFixedTimer validates and builds a fixed-window timer. New timers start
// out active.
func NewFixedTimer(id, shopID uuid.UUID, startsAt, endsAt time.Time, targeting Targeting, appearance json.RawMessage, now time.Time) (*Timer, error) {
	if shopID == uuid.Nil {
		return nil, ErrEmptyShop
	}
	if startsAt.IsZero() || endsAt.IsZero() {
		return nil, ErrMissingWindow
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidWindow
	}
	start := startsAt
	end := endsAt
	return &Timer{
		id:         id,
		shopID:     shopID,
		kind:       KindFixed,
		startsAt:   &start,
		endsAt:     &end,
		targeting:  targeting,
		appearance: appearance,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewEvergreenTimer validates and builds a per-visitor relative timer.
func NewEvergreenTimer(id, shopID uuid.UUID, durationMinutes int32, targeting Targeting, appearance json.RawMessage, now time.Time) (*Timer, error) {
	if shopID == uuid.Nil {
		return nil, ErrEmptyShop
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, ErrInvalidDuration
	}
	return &Timer{
		id:              id,
		shopID:          shopID,
		kind:            KindEvergreen,
		durationMinutes: durationMinutes,
		targeting:       targeting,
		appearance:      appearance,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct hydrates a timer from storage. Window fields are deliberately
// not re-validated: a malformed stored window must surface as StatusInvalid
// on read, not as a hydration error.
func Reconstruct(
	id, shopID uuid.UUID,
	kind Kind,
	startsAt, endsAt *time.Time,
	durationMinutes int32,
	targeting Targeting,
	appearance json.RawMessage,
	active bool,
	impressions int64,
	createdAt, updatedAt time.Time,
) *Timer {
	return &Timer{
		id:              id,
		shopID:          shopID,
		kind:            kind,
		startsAt:        startsAt,
		endsAt:          endsAt,
		durationMinutes: durationMinutes,
		targeting:       targeting,
		appearance:      appearance,
		active:          active,
		impressions:     impressions,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (t *Timer) ID() uuid.UUID               { return t.id }
func (t *Timer) ShopID() uuid.UUID           { return t.shopID }
func (t *Timer) Kind() Kind                  { return t.kind }
func (t *Timer) StartsAt() *time.Time        { return t.startsAt }
func (t *Timer) EndsAt() *time.Time          { return t.endsAt }
func (t *Timer) DurationMinutes() int32      { return t.durationMinutes }
func (t *Timer) Targeting() Targeting        { return t.targeting }
func (t *Timer) Appearance() json.RawMessage { return t.appearance }
func (t *Timer) Active() bool                { return t.active }
func (t *Timer) Impressions() int64          { return t.impressions }
func (t *Timer) CreatedAt() time.Time        { return t.createdAt }
func (t *Timer) UpdatedAt() time.Time        { return t.updatedAt }

// Duration returns the evergreen window length. Zero for fixed timers.
func (t *Timer) Duration() time.Duration {
	if t.kind != KindEvergreen {
		return 0
	}
	return time.Duration(t.durationMinutes) * time.Minute
}

// hasValidWindow reports whether a fixed timer's window is well-formed.
func (t *Timer) hasValidWindow() bool {
	return t.startsAt != nil && t.endsAt != nil &&
		!t.startsAt.IsZero() && !t.endsAt.IsZero() &&
		t.endsAt.After(*t.startsAt)
}
