package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/infra/db"
	"timebar/internal/pkg/pgconv"
	"timebar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"
const pgForeignKeyViolation = "23503"

type TimerRepository struct {
	db     db.Querier
	logger *slog.Logger
}

func NewTimerRepository(q db.Querier, logger *slog.Logger) *TimerRepository {
	return &TimerRepository{db: q, logger: logger}
}

var (
	_ commands.TimerRepository      = (*TimerRepository)(nil)
	_ commands.ImpressionRepository = (*TimerRepository)(nil)
)

func (r *TimerRepository) FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, shop_id, kind, starts_at, ends_at, duration_minutes,
		       targeting_scope, targeting_ids, appearance, is_active, impressions,
		       created_at, updated_at
		FROM timers WHERE id = $1`, id)

	var (
		rowID, shopID   uuid.UUID
		kind            string
		startsAt        *time.Time
		endsAt          *time.Time
		durationMinutes int32
		targetingScope  string
		targetingIDs    []string
		appearance      []byte
		isActive        bool
		impressions     int64
		createdAt       time.Time
		updatedAt       time.Time
	)
	err := row.Scan(
		&rowID, &shopID, &kind, &startsAt, &endsAt, &durationMinutes,
		&targetingScope, &targetingIDs, &appearance, &isActive, &impressions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load timer", err)
	}

	return timer.Reconstruct(
		rowID, shopID,
		timer.Kind(kind),
		startsAt, endsAt,
		durationMinutes,
		timer.ReconstructTargeting(targetingScope, targetingIDs),
		appearance,
		isActive,
		impressions,
		createdAt, updatedAt,
	), nil
}

func (r *TimerRepository) Create(ctx context.Context, t *timer.Timer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO timers (
			id, shop_id, kind, starts_at, ends_at, duration_minutes,
			targeting_scope, targeting_ids, appearance, is_active, impressions,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID(), t.ShopID(), t.Kind().String(),
		t.StartsAt(), t.EndsAt(), t.DurationMinutes(),
		t.Targeting().Scope().String(), t.Targeting().IDs(), []byte(t.Appearance()),
		t.Active(), t.Impressions(), t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return r.wrapWriteErr("failed to create timer", err)
	}
	return nil
}

func (r *TimerRepository) Update(ctx context.Context, t *timer.Timer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE timers SET
			starts_at = $2, ends_at = $3, duration_minutes = $4,
			targeting_scope = $5, targeting_ids = $6, appearance = $7,
			updated_at = $8
		WHERE id = $1`,
		t.ID(), t.StartsAt(), t.EndsAt(), t.DurationMinutes(),
		t.Targeting().Scope().String(), t.Targeting().IDs(), []byte(t.Appearance()),
		t.UpdatedAt(),
	)
	if err != nil {
		return r.wrapWriteErr("failed to update timer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found for update", nil)
	}
	return nil
}

func (r *TimerRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE timers SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, updatedAt,
	)
	if err != nil {
		return r.wrapWriteErr("failed to toggle timer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found for toggle", nil)
	}
	return nil
}

func (r *TimerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timers WHERE id = $1`, id)
	if err != nil {
		return r.wrapWriteErr("failed to delete timer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found for delete", nil)
	}
	return nil
}

// IncrementImpressions bumps the counter with a single atomic statement; the
// shop guard stops cross-shop inflation from forged requests.
func (r *TimerRepository) IncrementImpressions(ctx context.Context, timerID uuid.UUID, shopID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE timers SET impressions = impressions + 1 WHERE id = $1 AND shop_id = $2`,
		timerID, shopID,
	)
	if err != nil {
		return r.wrapWriteErr("failed to increment impressions", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found for impression", nil)
	}
	return nil
}

func (r *TimerRepository) wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, msg, err)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
}
