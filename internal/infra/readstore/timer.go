package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"timebar/internal/domain/timer"
	"timebar/internal/infra"
	"timebar/internal/infra/db"
	"timebar/internal/pkg/pgconv"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const timerColumns = `id, shop_id, kind, starts_at, ends_at, duration_minutes,
	targeting_scope, targeting_ids, appearance, is_active, impressions, created_at, updated_at`

type TimerReadStore struct {
	db     db.Querier
	logger *slog.Logger
}

func NewTimerReadStore(q db.Querier, logger *slog.Logger) *TimerReadStore {
	return &TimerReadStore{db: q, logger: logger}
}

var _ queries.TimerReadStore = (*TimerReadStore)(nil)

func (r *TimerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+timerColumns+` FROM timers WHERE id = $1`, id)
	t, err := scanTimer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get timer by id", err)
	}
	return t, nil
}

func (r *TimerReadStore) FindByShopFirstPage(ctx context.Context, shopID uuid.UUID, limit int32, filters queries.TimerFilters) ([]*timer.Timer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timerColumns+`
		FROM timers
		WHERE shop_id = $1
		  AND ($2::text IS NULL OR kind = $2)
		  AND ($3::boolean IS NULL OR is_active = $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`,
		shopID, filters.Kind, filters.Active, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list timers first page", err)
	}
	defer rows.Close()
	return collectTimers(rows, r.logger)
}

func (r *TimerReadStore) FindByShopKeyset(ctx context.Context, shopID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters queries.TimerFilters) ([]*timer.Timer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timerColumns+`
		FROM timers
		WHERE shop_id = $1
		  AND (created_at, id) < ($2, $3)
		  AND ($4::text IS NULL OR kind = $4)
		  AND ($5::boolean IS NULL OR is_active = $5)
		ORDER BY created_at DESC, id DESC
		LIMIT $6`,
		shopID, lastCreatedAt, lastID, filters.Kind, filters.Active, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list timers keyset", err)
	}
	defer rows.Close()
	return collectTimers(rows, r.logger)
}

// FindEnabledByShop loads the selection candidates: enabled rows only, since
// a disabled timer can never win regardless of its window. Window and
// targeting checks stay in the domain so the rules live in one place.
func (r *TimerReadStore) FindEnabledByShop(ctx context.Context, shopID uuid.UUID) ([]*timer.Timer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timerColumns+`
		FROM timers
		WHERE shop_id = $1 AND is_active
		ORDER BY created_at DESC, id DESC`,
		shopID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load timer candidates", err)
	}
	defer rows.Close()
	return collectTimers(rows, r.logger)
}

func collectTimers(rows pgx.Rows, logger *slog.Logger) ([]*timer.Timer, error) {
	var result []*timer.Timer
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to scan timer row", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to iterate timer rows", err)
	}
	return result, nil
}

func scanTimer(row pgx.Row) (*timer.Timer, error) {
	var (
		id, shopID      uuid.UUID
		kind            string
		startsAt        pgtype.Timestamptz
		endsAt          pgtype.Timestamptz
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
		&id, &shopID, &kind, &startsAt, &endsAt, &durationMinutes,
		&targetingScope, &targetingIDs, &appearance, &isActive, &impressions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return timer.Reconstruct(
		id, shopID,
		timer.Kind(kind),
		pgconv.TimePtrFromPgtype(startsAt),
		pgconv.TimePtrFromPgtype(endsAt),
		durationMinutes,
		timer.ReconstructTargeting(targetingScope, targetingIDs),
		json.RawMessage(appearance),
		isActive,
		impressions,
		createdAt, updatedAt,
	), nil
}
