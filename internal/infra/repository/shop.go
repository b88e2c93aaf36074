package repository

import (
	"context"
	"log/slog"

	"timebar/internal/domain/shop"
	"timebar/internal/infra"
	"timebar/internal/infra/db"
)

type ShopRepository struct {
	db     db.Querier
	logger *slog.Logger
}

func NewShopRepository(q db.Querier, logger *slog.Logger) *ShopRepository {
	return &ShopRepository{db: q, logger: logger}
}

func (r *ShopRepository) Create(ctx context.Context, s *shop.Shop, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shops (id, domain, name, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), s.Domain().String(), s.Name(), passwordHash, s.Active(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create shop", err)
	}
	return nil
}

func (r *ShopRepository) SetActive(ctx context.Context, s *shop.Shop, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE shops SET is_active = $2 WHERE id = $1`, s.ID(), active)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle shop", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "shop not found for toggle", nil)
	}
	return nil
}
