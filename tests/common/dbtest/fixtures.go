//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestShop(t *testing.T, db DBLike, domain, name string) uuid.UUID {
	t.Helper()

	shopID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO shops (id, domain, name, password_hash, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (domain) DO NOTHING",
		shopID, domain, name, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM shops WHERE domain = $1", domain).Scan(&shopID)
	}

	return shopID
}

func DeactivateShop(t *testing.T, db DBLike, shopID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE shops SET is_active = false WHERE id = $1", shopID)
	require.NoError(t, err)
}

type TimerFixture struct {
	ShopID          uuid.UUID
	Kind            string
	StartsAt        *time.Time
	EndsAt          *time.Time
	DurationMinutes int32
	TargetingScope  string
	TargetingIDs    []string
	Appearance      map[string]any
	Active          bool
	CreatedAt       time.Time
}

func CreateTestTimer(t *testing.T, db DBLike, fx TimerFixture) uuid.UUID {
	t.Helper()

	timerID := uuid.New()
	ctx := context.Background()

	if fx.TargetingScope == "" {
		fx.TargetingScope = "all"
	}
	if fx.TargetingIDs == nil {
		fx.TargetingIDs = []string{}
	}
	if fx.CreatedAt.IsZero() {
		fx.CreatedAt = time.Now().UTC()
	}
	var appearance []byte
	if fx.Appearance != nil {
		var err error
		appearance, err = json.Marshal(fx.Appearance)
		require.NoError(t, err)
	}

	_, err := db.Exec(ctx, `
		INSERT INTO timers (id, shop_id, kind, starts_at, ends_at, duration_minutes,
		                    targeting_scope, targeting_ids, appearance, is_active,
		                    impressions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $11)`,
		timerID, fx.ShopID, fx.Kind, fx.StartsAt, fx.EndsAt, fx.DurationMinutes,
		fx.TargetingScope, fx.TargetingIDs, appearance, fx.Active, fx.CreatedAt)
	require.NoError(t, err)

	return timerID
}

func TimerImpressions(t *testing.T, db DBLike, timerID uuid.UUID) int64 {
	t.Helper()

	var impressions int64
	err := db.QueryRow(context.Background(), "SELECT impressions FROM timers WHERE id = $1", timerID).Scan(&impressions)
	require.NoError(t, err)
	return impressions
}

// SeedReferenceData is a no-op hook kept for symmetry with ResetDB; shops and
// timers are created per test.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
