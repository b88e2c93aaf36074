//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	domtimer "timebar/internal/domain/timer"
	reqdto "timebar/internal/handler/dto/request"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimerBuilder struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Kind            string
	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int32
	TargetingScope  string
	TargetingIDs    []string
	Appearance      json.RawMessage
	Active          bool
	Impressions     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewTimerBuilder() *TimerBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &TimerBuilder{
		ID:              uuid.New(),
		ShopID:          uuid.New(),
		Kind:            "fixed",
		StartsAt:        now.Add(-time.Hour),
		EndsAt:          now.Add(time.Hour),
		DurationMinutes: 0,
		TargetingScope:  "all",
		TargetingIDs:    nil,
		Appearance:      json.RawMessage(`{"message":"Sale ends soon!","bg_color":"#111111"}`),
		Active:          true,
		Impressions:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *TimerBuilder) With(mutate func(*TimerBuilder)) *TimerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TimerBuilder) BuildDomain() (*domtimer.Timer, error) {
	targeting, err := domtimer.NewTargeting(domtimer.Scope(b.TargetingScope), b.TargetingIDs)
	if err != nil {
		return nil, err
	}
	if b.Kind == "evergreen" {
		return domtimer.NewEvergreenTimer(b.ID, b.ShopID, b.DurationMinutes, targeting, b.Appearance, b.CreatedAt)
	}
	return domtimer.NewFixedTimer(b.ID, b.ShopID, b.StartsAt, b.EndsAt, targeting, b.Appearance, b.CreatedAt)
}

func (b *TimerBuilder) BuildCreateRequestDTO() reqdto.CreateTimerRequest {
	req := reqdto.CreateTimerRequest{
		Kind:           b.Kind,
		TargetingScope: b.TargetingScope,
		TargetingIDs:   b.TargetingIDs,
		Appearance:     b.Appearance,
	}
	if b.Kind == "evergreen" {
		req.DurationMinutes = b.DurationMinutes
	} else {
		startsAt := b.StartsAt
		endsAt := b.EndsAt
		req.StartsAt = &startsAt
		req.EndsAt = &endsAt
	}
	return req
}

func (b *TimerBuilder) BuildUpdateRequestDTO() reqdto.UpdateTimerRequest {
	startsAt := b.StartsAt
	endsAt := b.EndsAt
	scope := b.TargetingScope
	return reqdto.UpdateTimerRequest{
		StartsAt:       &startsAt,
		EndsAt:         &endsAt,
		TargetingScope: &scope,
		TargetingIDs:   b.TargetingIDs,
		Appearance:     b.Appearance,
	}
}

func (b *TimerBuilder) BuildView() *queries.TimerView {
	view := &queries.TimerView{
		ID:             b.ID,
		Kind:           b.Kind,
		Status:         "active",
		TargetingScope: b.TargetingScope,
		TargetingIDs:   b.TargetingIDs,
		Appearance:     b.Appearance,
		Active:         b.Active,
		Impressions:    b.Impressions,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.Kind == "evergreen" {
		view.DurationMinutes = b.DurationMinutes
	} else {
		startsAt := b.StartsAt
		endsAt := b.EndsAt
		view.StartsAt = &startsAt
		view.EndsAt = &endsAt
	}
	return view
}

func (b *TimerBuilder) BuildListItem() *queries.TimerListItem {
	return &queries.TimerListItem{
		ID:          b.ID,
		Kind:        b.Kind,
		Status:      "active",
		Active:      b.Active,
		Impressions: b.Impressions,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *TimerBuilder) BuildStorefrontView() *queries.StorefrontTimerView {
	view := &queries.StorefrontTimerView{
		ID:         b.ID,
		Kind:       b.Kind,
		Appearance: b.Appearance,
	}
	if b.Kind == "evergreen" {
		view.DurationMinutes = b.DurationMinutes
	} else {
		startsAt := b.StartsAt
		endsAt := b.EndsAt
		view.StartsAt = &startsAt
		view.EndsAt = &endsAt
	}
	return view
}

// Fluent builder methods
func (b *TimerBuilder) WithID(id uuid.UUID) *TimerBuilder {
	b.ID = id
	return b
}

func (b *TimerBuilder) WithShopID(shopID uuid.UUID) *TimerBuilder {
	b.ShopID = shopID
	return b
}

func (b *TimerBuilder) WithWindow(startsAt, endsAt time.Time) *TimerBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *TimerBuilder) WithTargeting(scope string, ids ...string) *TimerBuilder {
	b.TargetingScope = scope
	b.TargetingIDs = ids
	return b
}

func (b *TimerBuilder) WithAppearance(appearance json.RawMessage) *TimerBuilder {
	b.Appearance = appearance
	return b
}

func (b *TimerBuilder) WithActive(active bool) *TimerBuilder {
	b.Active = active
	return b
}

func (b *TimerBuilder) WithImpressions(n int64) *TimerBuilder {
	b.Impressions = n
	return b
}

func (b *TimerBuilder) WithCreatedAt(createdAt time.Time) *TimerBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *TimerBuilder) AsEvergreen(durationMinutes int32) *TimerBuilder {
	b.Kind = "evergreen"
	b.DurationMinutes = durationMinutes
	return b
}

func (b *TimerBuilder) AsExpired() *TimerBuilder {
	now := time.Now().UTC()
	b.Kind = "fixed"
	b.StartsAt = now.Add(-2 * time.Hour)
	b.EndsAt = now.Add(-time.Hour)
	return b
}

func (b *TimerBuilder) AsScheduled() *TimerBuilder {
	now := time.Now().UTC()
	b.Kind = "fixed"
	b.StartsAt = now.Add(time.Hour)
	b.EndsAt = now.Add(2 * time.Hour)
	return b
}
