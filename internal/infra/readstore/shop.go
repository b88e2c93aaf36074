package readstore

import (
	"context"
	"log/slog"

	domshop "timebar/internal/domain/shop"
	"timebar/internal/infra"
	"timebar/internal/infra/db"
	"timebar/internal/pkg/pgconv"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopReadStore struct {
	db     db.Querier
	logger *slog.Logger
}

func NewShopReadStore(q db.Querier, logger *slog.Logger) *ShopReadStore {
	return &ShopReadStore{db: q, logger: logger}
}

var _ queries.ShopReadStore = (*ShopReadStore)(nil)

func (r *ShopReadStore) FindByDomain(ctx context.Context, domain string) (*queries.ShopView, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, domain, name, password_hash, is_active, created_at
		FROM shops WHERE domain = $1`, domain)

	var view queries.ShopView
	var passwordHash string
	err := row.Scan(&view.ID, &view.Domain, &view.Name, &passwordHash, &view.IsActive, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(r.logger, infra.KindNotFound, "shop not found", err)
		}
		return nil, "", infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get shop by domain", err)
	}
	return &view, passwordHash, nil
}

func (r *ShopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShopView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, domain, name, is_active, created_at
		FROM shops WHERE id = $1`, id)

	var view queries.ShopView
	err := row.Scan(&view.ID, &view.Domain, &view.Name, &view.IsActive, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "shop not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get shop by id", err)
	}
	return &view, nil
}

// FindShopByDomain hydrates the domain entity for the storefront read path.
func (r *ShopReadStore) FindShopByDomain(ctx context.Context, domain string) (*domshop.Shop, error) {
	view, _, err := r.FindByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	return domshop.Reconstruct(view.ID, domshop.Domain(view.Domain), view.Name, view.IsActive, view.CreatedAt), nil
}
