package queries

import (
	"context"
	"encoding/json"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"
	"timebar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTimerNotFound = errs.New("timer not found")
	ErrInvalidCursor = errs.New("invalid cursor")
)

type TimerView struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	Status          string          `json:"status"`
	StartsAt        *time.Time      `json:"starts_at,omitempty"`
	EndsAt          *time.Time      `json:"ends_at,omitempty"`
	DurationMinutes int32           `json:"duration_minutes,omitempty"`
	TargetingScope  string          `json:"targeting_scope"`
	TargetingIDs    []string        `json:"targeting_ids,omitempty"`
	Appearance      json.RawMessage `json:"appearance,omitempty"`
	Active          bool            `json:"active"`
	Impressions     int64           `json:"impressions"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type TimerListItem struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Active      bool      `json:"active"`
	Impressions int64     `json:"impressions"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimerFilters struct {
	Kind   *string
	Active *bool
}

type TimerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error)
	FindByShopFirstPage(ctx context.Context, shopID uuid.UUID, limit int32, filters TimerFilters) ([]*timer.Timer, error)
	FindByShopKeyset(ctx context.Context, shopID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters TimerFilters) ([]*timer.Timer, error)
}

type TimerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, shopID uuid.UUID) (*TimerView, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, filters TimerFilters, cursor *Cursor, limit int) ([]*TimerListItem, *Cursor, error)
}

type timerQueriesImpl struct {
	store TimerReadStore
	clock clock.Clock
}

func NewTimerQueries(store TimerReadStore, clk clock.Clock) TimerQueries {
	return &timerQueriesImpl{store: store, clock: clk}
}

func (q *timerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, shopID uuid.UUID) (*TimerView, error) {
	t, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTimerNotFound
		}
		return nil, err
	}
	// Ownership is enforced as absence so timer IDs are not probeable across shops.
	if t.ShopID() != shopID {
		return nil, ErrTimerNotFound
	}
	return TimerViewFrom(t, q.clock.Now()), nil
}

func (q *timerQueriesImpl) ListByShop(ctx context.Context, shopID uuid.UUID, filters TimerFilters, cursor *Cursor, limit int) ([]*TimerListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*timer.Timer
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByShopFirstPage(ctx, shopID, int32(limit+1), filters)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByShopKeyset(ctx, shopID, lastCreatedAt, lastID, int32(limit+1), filters)
	}
	if err != nil {
		return nil, nil, err
	}

	now := q.clock.Now()
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		rows = rows[:limit]
	}
	items := make([]*TimerListItem, len(rows))
	for i, t := range rows {
		items[i] = &TimerListItem{
			ID:          t.ID(),
			Kind:        t.Kind().String(),
			Status:      timer.ComputeStatus(t, now).String(),
			Active:      t.Active(),
			Impressions: t.Impressions(),
			CreatedAt:   t.CreatedAt(),
		}
	}
	return items, next, nil
}

// TimerViewFrom flattens an entity into the admin read shape. Status is
// computed against now rather than stored, so it never goes stale.
func TimerViewFrom(t *timer.Timer, now time.Time) *TimerView {
	return &TimerView{
		ID:              t.ID(),
		Kind:            t.Kind().String(),
		Status:          timer.ComputeStatus(t, now).String(),
		StartsAt:        t.StartsAt(),
		EndsAt:          t.EndsAt(),
		DurationMinutes: t.DurationMinutes(),
		TargetingScope:  t.Targeting().Scope().String(),
		TargetingIDs:    t.Targeting().IDs(),
		Appearance:      t.Appearance(),
		Active:          t.Active(),
		Impressions:     t.Impressions(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
