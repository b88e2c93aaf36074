//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"
	"timebar/internal/usecase/commands"
	"timebar/tests/common/builder"
	commandsmock "timebar/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Tests
// =============================================================================

func TestTimerCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	shopID := uuid.New()

	newCommands := func(t *testing.T) (commands.TimerCommands, *commandsmock.MockTimerRepository) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockTimerRepository(ctrl)
		return commands.NewTimerUseCase(repo, clock.NewMockClock(now)), repo
	}

	t.Run("success: fixed timer persists with its window", func(t *testing.T) {
		uc, repo := newCommands(t)
		startsAt := now.Add(time.Hour)
		endsAt := now.Add(2 * time.Hour)
		var persisted *timer.Timer
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entity *timer.Timer) error {
				persisted = entity
				return nil
			})

		result, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
		}, shopID)
		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, result.TimerID, persisted.ID())
		assert.Equal(t, shopID, persisted.ShopID())
		assert.Equal(t, timer.KindFixed, persisted.Kind())
		assert.True(t, persisted.Active())
		assert.Equal(t, timer.ScopeAll, persisted.Targeting().Scope())
	})

	t.Run("success: evergreen timer persists with its duration", func(t *testing.T) {
		uc, repo := newCommands(t)
		var persisted *timer.Timer
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entity *timer.Timer) error {
				persisted = entity
				return nil
			})

		_, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:            "evergreen",
			DurationMinutes: 30,
			TargetingScope:  "products",
			TargetingIDs:    []string{"prod-1"},
		}, shopID)
		require.NoError(t, err)
		assert.Equal(t, timer.KindEvergreen, persisted.Kind())
		assert.EqualValues(t, 30, persisted.DurationMinutes())
		assert.Equal(t, timer.ScopeProducts, persisted.Targeting().Scope())
	})

	t.Run("error: fixed timer without window", func(t *testing.T) {
		uc, _ := newCommands(t)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{Kind: "fixed"}, shopID)
		assert.ErrorIs(t, err, timer.ErrMissingWindow)
	})

	t.Run("error: window ending before it starts", func(t *testing.T) {
		uc, _ := newCommands(t)
		startsAt := now.Add(2 * time.Hour)
		endsAt := now.Add(time.Hour)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
		}, shopID)
		assert.ErrorIs(t, err, timer.ErrInvalidWindow)
	})

	t.Run("error: evergreen duration out of range", func(t *testing.T) {
		uc, _ := newCommands(t)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:            "evergreen",
			DurationMinutes: 0,
		}, shopID)
		assert.ErrorIs(t, err, timer.ErrInvalidDuration)
	})

	t.Run("error: unknown kind", func(t *testing.T) {
		uc, _ := newCommands(t)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{Kind: "flash"}, shopID)
		assert.ErrorIs(t, err, timer.ErrInvalidKind)
	})

	t.Run("error: scoped targeting without ids", func(t *testing.T) {
		uc, _ := newCommands(t)
		startsAt := now.Add(-time.Hour)
		endsAt := now.Add(time.Hour)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:           "fixed",
			StartsAt:       &startsAt,
			EndsAt:         &endsAt,
			TargetingScope: "products",
		}, shopID)
		assert.ErrorIs(t, err, timer.ErrEmptyTargetingIDs)
	})

	t.Run("error: repository failure passes through", func(t *testing.T) {
		uc, repo := newCommands(t)
		startsAt := now.Add(-time.Hour)
		endsAt := now.Add(time.Hour)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errDBConnectionLost)
		_, err := uc.Create(ctx, commands.CreateTimerRequest{
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
		}, shopID)
		assert.ErrorIs(t, err, errDBConnectionLost)
	})
}

// =============================================================================
// Update Tests
// =============================================================================

func TestTimerCommands_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	shopID := uuid.New()

	newCommands := func(t *testing.T) (commands.TimerCommands, *commandsmock.MockTimerRepository) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockTimerRepository(ctrl)
		return commands.NewTimerUseCase(repo, clock.NewMockClock(now)), repo
	}

	buildExisting := func(t *testing.T) *timer.Timer {
		t.Helper()
		entity, err := builder.NewTimerBuilder().
			WithShopID(shopID).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		return entity
	}

	t.Run("success: untouched fields keep their stored values", func(t *testing.T) {
		uc, repo := newCommands(t)
		existing := buildExisting(t)
		newEnd := now.Add(3 * time.Hour)

		var updated *timer.Timer
		repo.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entity *timer.Timer) error {
				updated = entity
				return nil
			})

		err := uc.Update(ctx, existing.ID(), commands.UpdateTimerRequest{EndsAt: &newEnd}, shopID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.StartsAt().Equal(*existing.StartsAt()))
		assert.True(t, updated.EndsAt().Equal(newEnd))
		assert.Equal(t, existing.Targeting().Scope(), updated.Targeting().Scope())
		assert.Equal(t, existing.CreatedAt(), updated.CreatedAt())
	})

	t.Run("success: kind survives any update", func(t *testing.T) {
		uc, repo := newCommands(t)
		existing, err := builder.NewTimerBuilder().
			WithShopID(shopID).
			AsEvergreen(30).
			BuildDomain()
		require.NoError(t, err)
		duration := int32(60)

		var updated *timer.Timer
		repo.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entity *timer.Timer) error {
				updated = entity
				return nil
			})

		err = uc.Update(ctx, existing.ID(), commands.UpdateTimerRequest{DurationMinutes: &duration}, shopID)
		require.NoError(t, err)
		assert.Equal(t, timer.KindEvergreen, updated.Kind())
		assert.EqualValues(t, 60, updated.DurationMinutes())
	})

	t.Run("error: merged window is invalid", func(t *testing.T) {
		uc, repo := newCommands(t)
		existing := buildExisting(t)
		badEnd := now.Add(-2 * time.Hour) // before the stored start

		repo.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)

		err := uc.Update(ctx, existing.ID(), commands.UpdateTimerRequest{EndsAt: &badEnd}, shopID)
		assert.ErrorIs(t, err, timer.ErrInvalidWindow)
	})

	t.Run("error: timer not found", func(t *testing.T) {
		uc, repo := newCommands(t)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		err := uc.Update(ctx, id, commands.UpdateTimerRequest{}, shopID)
		assert.ErrorIs(t, err, commands.ErrTimerNotFoundWrite)
	})

	t.Run("error: timer owned by another shop", func(t *testing.T) {
		uc, repo := newCommands(t)
		other, err := builder.NewTimerBuilder().
			WithShopID(uuid.New()).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		repo.EXPECT().FindByID(ctx, other.ID()).Return(other, nil)

		err = uc.Update(ctx, other.ID(), commands.UpdateTimerRequest{}, shopID)
		assert.ErrorIs(t, err, commands.ErrTimerNotOwned)
	})
}

// =============================================================================
// SetActive / Delete Tests
// =============================================================================

func TestTimerCommands_SetActive(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	shopID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockTimerRepository(ctrl)
	uc := commands.NewTimerUseCase(repo, clock.NewMockClock(now))

	existing, err := builder.NewTimerBuilder().
		WithShopID(shopID).
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		BuildDomain()
	require.NoError(t, err)

	t.Run("success: disables without touching the schedule", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)
		repo.EXPECT().SetActive(ctx, existing.ID(), false, now).Return(nil)
		require.NoError(t, uc.SetActive(ctx, existing.ID(), false, shopID))
	})

	t.Run("error: not found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})
		assert.ErrorIs(t, uc.SetActive(ctx, id, true, shopID), commands.ErrTimerNotFoundWrite)
	})
}

func TestTimerCommands_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	shopID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockTimerRepository(ctrl)
	uc := commands.NewTimerUseCase(repo, clock.NewMockClock(now))

	existing, err := builder.NewTimerBuilder().
		WithShopID(shopID).
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		BuildDomain()
	require.NoError(t, err)

	t.Run("success: deletes an owned timer", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, existing.ID()).Return(existing, nil)
		repo.EXPECT().Delete(ctx, existing.ID()).Return(nil)
		require.NoError(t, uc.Delete(ctx, existing.ID(), shopID))
	})

	t.Run("error: another shop's timer", func(t *testing.T) {
		other, err := builder.NewTimerBuilder().
			WithShopID(uuid.New()).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		repo.EXPECT().FindByID(ctx, other.ID()).Return(other, nil)
		assert.ErrorIs(t, uc.Delete(ctx, other.ID(), shopID), commands.ErrTimerNotOwned)
	})
}
