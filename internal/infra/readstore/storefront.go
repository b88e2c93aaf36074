package readstore

import (
	"context"

	"timebar/internal/domain/shop"
	"timebar/internal/domain/timer"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
)

// StorefrontReadStore stitches the shop lookup and the candidate load into
// the single dependency the storefront query wants.
type StorefrontReadStore struct {
	shops  *ShopReadStore
	timers *TimerReadStore
}

func NewStorefrontReadStore(shops *ShopReadStore, timers *TimerReadStore) *StorefrontReadStore {
	return &StorefrontReadStore{shops: shops, timers: timers}
}

var _ queries.StorefrontReadStore = (*StorefrontReadStore)(nil)

func (r *StorefrontReadStore) FindShopByDomain(ctx context.Context, domain string) (*shop.Shop, error) {
	return r.shops.FindShopByDomain(ctx, domain)
}

func (r *StorefrontReadStore) FindEnabledByShop(ctx context.Context, shopID uuid.UUID) ([]*timer.Timer, error) {
	return r.timers.FindEnabledByShop(ctx, shopID)
}
