package queries

import (
	"context"
	"encoding/json"
	"time"

	"timebar/internal/domain/shop"
	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"
	"timebar/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNoActiveTimer is the normal empty outcome: nothing matched for this
// visit. Handlers translate it to 204, never to an error payload.
var ErrNoActiveTimer = errs.New("no active timer")

// StorefrontTimerView is the public shape. It deliberately omits targeting
// rules, impression counts and audit fields; the storefront only needs
// enough to draw the bar.
type StorefrontTimerView struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	StartsAt        *time.Time      `json:"starts_at,omitempty"`
	EndsAt          *time.Time      `json:"ends_at,omitempty"`
	DurationMinutes int32           `json:"duration_minutes,omitempty"`
	Appearance      json.RawMessage `json:"appearance,omitempty"`
}

type StorefrontReadStore interface {
	FindShopByDomain(ctx context.Context, domain string) (*shop.Shop, error)
	FindEnabledByShop(ctx context.Context, shopID uuid.UUID) ([]*timer.Timer, error)
}

type StorefrontQueries interface {
	ActiveTimer(ctx context.Context, shopDomain string, productID string, collectionIDs []string) (*StorefrontTimerView, error)
}

type storefrontQueriesImpl struct {
	store StorefrontReadStore
	clock clock.Clock
}

func NewStorefrontQueries(store StorefrontReadStore, clk clock.Clock) StorefrontQueries {
	return &storefrontQueriesImpl{store: store, clock: clk}
}

func (q *storefrontQueriesImpl) ActiveTimer(ctx context.Context, shopDomain string, productID string, collectionIDs []string) (*StorefrontTimerView, error) {
	sh, err := q.store.FindShopByDomain(ctx, shopDomain)
	if err != nil {
		// An unknown or misspelled shop renders nothing rather than erroring;
		// the widget is embedded on pages we do not control.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActiveTimer
		}
		return nil, err
	}
	if !sh.Active() {
		return nil, ErrNoActiveTimer
	}

	candidates, err := q.store.FindEnabledByShop(ctx, sh.ID())
	if err != nil {
		return nil, err
	}

	selected := timer.Select(candidates, sh.ID(), q.clock.Now(), productID, collectionIDs)
	if selected == nil {
		return nil, ErrNoActiveTimer
	}

	view := &StorefrontTimerView{
		ID:         selected.ID(),
		Kind:       selected.Kind().String(),
		Appearance: selected.Appearance(),
	}
	switch selected.Kind() {
	case timer.KindEvergreen:
		view.DurationMinutes = selected.DurationMinutes()
	default:
		view.StartsAt = selected.StartsAt()
		view.EndsAt = selected.EndsAt()
	}
	return view, nil
}
