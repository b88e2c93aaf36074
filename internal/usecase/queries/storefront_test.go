//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"
	"timebar/internal/usecase/queries"
	"timebar/tests/common/builder"
	queriesmock "timebar/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStorefrontQueries_ActiveTimer(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	shopBuilder := builder.NewShopBuilder()
	sh := shopBuilder.BuildDomain()

	newQueries := func(t *testing.T) (queries.StorefrontQueries, *queriesmock.MockStorefrontReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockStorefrontReadStore(ctrl)
		return queries.NewStorefrontQueries(store, clock.NewMockClock(now)), store
	}

	buildFixed := func(t *testing.T, createdAt time.Time) *timer.Timer {
		t.Helper()
		entity, err := builder.NewTimerBuilder().
			WithShopID(sh.ID()).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			WithCreatedAt(createdAt).
			BuildDomain()
		require.NoError(t, err)
		return entity
	}

	t.Run("success: running fixed timer is returned with its window", func(t *testing.T) {
		q, store := newQueries(t)
		entity := buildFixed(t, now)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return([]*timer.Timer{entity}, nil)

		view, err := q.ActiveTimer(ctx, sh.Domain().String(), "", nil)
		require.NoError(t, err)
		assert.Equal(t, entity.ID(), view.ID)
		assert.Equal(t, "fixed", view.Kind)
		require.NotNil(t, view.StartsAt)
		require.NotNil(t, view.EndsAt)
		assert.Zero(t, view.DurationMinutes)
	})

	t.Run("success: evergreen timer carries only its duration", func(t *testing.T) {
		q, store := newQueries(t)
		entity, err := builder.NewTimerBuilder().
			WithShopID(sh.ID()).
			AsEvergreen(45).
			BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return([]*timer.Timer{entity}, nil)

		view, err := q.ActiveTimer(ctx, sh.Domain().String(), "", nil)
		require.NoError(t, err)
		assert.Equal(t, "evergreen", view.Kind)
		assert.EqualValues(t, 45, view.DurationMinutes)
		assert.Nil(t, view.StartsAt)
		assert.Nil(t, view.EndsAt)
	})

	t.Run("success: newest of several showable timers wins", func(t *testing.T) {
		q, store := newQueries(t)
		older := buildFixed(t, now.Add(-time.Hour))
		newest := buildFixed(t, now)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return([]*timer.Timer{older, newest}, nil)

		view, err := q.ActiveTimer(ctx, sh.Domain().String(), "", nil)
		require.NoError(t, err)
		assert.Equal(t, newest.ID(), view.ID)
	})

	t.Run("success: product targeting filters by page context", func(t *testing.T) {
		q, store := newQueries(t)
		entity, err := builder.NewTimerBuilder().
			WithShopID(sh.ID()).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			WithTargeting("products", "prod-1", "prod-2").
			BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil).Times(2)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return([]*timer.Timer{entity}, nil).Times(2)

		view, err := q.ActiveTimer(ctx, sh.Domain().String(), "prod-1", nil)
		require.NoError(t, err)
		assert.Equal(t, entity.ID(), view.ID)

		_, err = q.ActiveTimer(ctx, sh.Domain().String(), "prod-9", nil)
		assert.ErrorIs(t, err, queries.ErrNoActiveTimer)
	})

	t.Run("error: no showable timer yields ErrNoActiveTimer", func(t *testing.T) {
		q, store := newQueries(t)
		scheduled, err := builder.NewTimerBuilder().
			WithShopID(sh.ID()).
			WithWindow(now.Add(time.Hour), now.Add(2*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return([]*timer.Timer{scheduled}, nil)

		_, err = q.ActiveTimer(ctx, sh.Domain().String(), "", nil)
		assert.ErrorIs(t, err, queries.ErrNoActiveTimer)
	})

	t.Run("error: unknown shop yields ErrNoActiveTimer", func(t *testing.T) {
		q, store := newQueries(t)
		store.EXPECT().FindShopByDomain(ctx, "nobody.myshopify.com").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.ActiveTimer(ctx, "nobody.myshopify.com", "", nil)
		assert.ErrorIs(t, err, queries.ErrNoActiveTimer)
	})

	t.Run("error: inactive shop yields ErrNoActiveTimer", func(t *testing.T) {
		q, store := newQueries(t)
		inactive := builder.NewShopBuilder().AsInactive().BuildDomain()
		store.EXPECT().FindShopByDomain(ctx, inactive.Domain().String()).Return(inactive, nil)

		_, err := q.ActiveTimer(ctx, inactive.Domain().String(), "", nil)
		assert.ErrorIs(t, err, queries.ErrNoActiveTimer)
	})

	t.Run("error: database failure passes through", func(t *testing.T) {
		q, store := newQueries(t)
		store.EXPECT().FindShopByDomain(ctx, sh.Domain().String()).Return(sh, nil)
		store.EXPECT().FindEnabledByShop(ctx, sh.ID()).Return(nil, errDBConnectionLost)

		_, err := q.ActiveTimer(ctx, sh.Domain().String(), "", nil)
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}
