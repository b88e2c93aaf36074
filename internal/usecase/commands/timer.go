package commands

import (
	"context"
	"encoding/json"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"
	"timebar/internal/pkg/errs"
	"timebar/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrTimerNotFoundWrite = errs.New("timer not found")
	ErrTimerNotOwned      = errs.New("timer not owned by shop")
)

type TimerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error)
	Create(ctx context.Context, t *timer.Timer) error
	Update(ctx context.Context, t *timer.Timer) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateTimerRequest struct {
	Kind            string
	StartsAt        *time.Time
	EndsAt          *time.Time
	DurationMinutes int32
	TargetingScope  string
	TargetingIDs    []string
	Appearance      json.RawMessage
}

// UpdateTimerRequest carries only the fields the merchant touched; nil means
// keep the stored value. Kind is immutable after creation.
type UpdateTimerRequest struct {
	StartsAt        *time.Time
	EndsAt          *time.Time
	DurationMinutes *int32
	TargetingScope  *string
	TargetingIDs    []string
	Appearance      json.RawMessage
}

type CreateTimerResult struct {
	TimerID uuid.UUID
}

type TimerCommands interface {
	Create(ctx context.Context, req CreateTimerRequest, shopID uuid.UUID) (*CreateTimerResult, error)
	Update(ctx context.Context, timerID uuid.UUID, req UpdateTimerRequest, shopID uuid.UUID) error
	SetActive(ctx context.Context, timerID uuid.UUID, active bool, shopID uuid.UUID) error
	Delete(ctx context.Context, timerID uuid.UUID, shopID uuid.UUID) error
}

type timerUseCaseImpl struct {
	repo  TimerRepository
	clock clock.Clock
}

func NewTimerUseCase(repo TimerRepository, clk clock.Clock) TimerCommands {
	return &timerUseCaseImpl{repo: repo, clock: clk}
}

func (uc *timerUseCaseImpl) Create(ctx context.Context, req CreateTimerRequest, shopID uuid.UUID) (*CreateTimerResult, error) {
	kind, err := timer.NewKind(req.Kind)
	if err != nil {
		return nil, err
	}
	targeting, err := buildTargeting(req.TargetingScope, req.TargetingIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	id := uuid.New()

	var t *timer.Timer
	switch kind {
	case timer.KindEvergreen:
		t, err = timer.NewEvergreenTimer(id, shopID, req.DurationMinutes, targeting, req.Appearance, now)
	default:
		if req.StartsAt == nil || req.EndsAt == nil {
			return nil, timer.ErrMissingWindow
		}
		t, err = timer.NewFixedTimer(id, shopID, *req.StartsAt, *req.EndsAt, targeting, req.Appearance, now)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &CreateTimerResult{TimerID: id}, nil
}

func (uc *timerUseCaseImpl) Update(ctx context.Context, timerID uuid.UUID, req UpdateTimerRequest, shopID uuid.UUID) error {
	existing, err := uc.loadOwned(ctx, timerID, shopID)
	if err != nil {
		return err
	}

	scope := patch.Coalesce(req.TargetingScope, existing.Targeting().Scope().String())
	ids := existing.Targeting().IDs()
	if req.TargetingIDs != nil {
		ids = req.TargetingIDs
	}
	parsedScope, err := timer.NewScope(scope)
	if err != nil {
		return err
	}
	targeting, err := buildTargeting(parsedScope.String(), ids)
	if err != nil {
		return err
	}

	appearance := existing.Appearance()
	if req.Appearance != nil {
		appearance = req.Appearance
	}

	now := uc.clock.Now()

	// Rebuild through the constructors so window and duration rules are
	// re-validated against the merged values, then graft the identity and
	// counters back on.
	var fresh *timer.Timer
	switch existing.Kind() {
	case timer.KindEvergreen:
		duration := patch.Coalesce(req.DurationMinutes, existing.DurationMinutes())
		fresh, err = timer.NewEvergreenTimer(existing.ID(), shopID, duration, targeting, appearance, now)
	default:
		startsAt := req.StartsAt
		if startsAt == nil {
			startsAt = existing.StartsAt()
		}
		endsAt := req.EndsAt
		if endsAt == nil {
			endsAt = existing.EndsAt()
		}
		if startsAt == nil || endsAt == nil {
			return timer.ErrMissingWindow
		}
		fresh, err = timer.NewFixedTimer(existing.ID(), shopID, *startsAt, *endsAt, targeting, appearance, now)
	}
	if err != nil {
		return err
	}

	merged := timer.Reconstruct(
		existing.ID(), shopID,
		existing.Kind(),
		fresh.StartsAt(), fresh.EndsAt(),
		fresh.DurationMinutes(),
		targeting,
		appearance,
		existing.Active(),
		existing.Impressions(),
		existing.CreatedAt(), now,
	)
	return uc.repo.Update(ctx, merged)
}

func (uc *timerUseCaseImpl) SetActive(ctx context.Context, timerID uuid.UUID, active bool, shopID uuid.UUID) error {
	if _, err := uc.loadOwned(ctx, timerID, shopID); err != nil {
		return err
	}
	return uc.repo.SetActive(ctx, timerID, active, uc.clock.Now())
}

func (uc *timerUseCaseImpl) Delete(ctx context.Context, timerID uuid.UUID, shopID uuid.UUID) error {
	if _, err := uc.loadOwned(ctx, timerID, shopID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, timerID)
}

func (uc *timerUseCaseImpl) loadOwned(ctx context.Context, timerID uuid.UUID, shopID uuid.UUID) (*timer.Timer, error) {
	existing, err := uc.repo.FindByID(ctx, timerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTimerNotFoundWrite
		}
		return nil, err
	}
	if existing.ShopID() != shopID {
		return nil, ErrTimerNotOwned
	}
	return existing, nil
}

func buildTargeting(scope string, ids []string) (timer.Targeting, error) {
	if scope == "" {
		return timer.TargetingEverywhere(), nil
	}
	parsed, err := timer.NewScope(scope)
	if err != nil {
		return timer.Targeting{}, err
	}
	return timer.NewTargeting(parsed, ids)
}
