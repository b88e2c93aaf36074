//go:build unit || e2e

package builder

import (
	"time"

	domshop "timebar/internal/domain/shop"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopBuilder struct {
	ID        uuid.UUID
	Domain    string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

func NewShopBuilder() *ShopBuilder {
	return &ShopBuilder{
		ID:        uuid.New(),
		Domain:    "demo.myshopify.com",
		Name:      "Demo Shop",
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func (b *ShopBuilder) BuildDomain() *domshop.Shop {
	dom, _ := domshop.NewDomain(b.Domain)
	return domshop.Reconstruct(b.ID, dom, b.Name, b.IsActive, b.CreatedAt)
}

func (b *ShopBuilder) BuildView() *queries.ShopView {
	return &queries.ShopView{
		ID:        b.ID,
		Domain:    b.Domain,
		Name:      b.Name,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ShopBuilder) WithID(id uuid.UUID) *ShopBuilder {
	b.ID = id
	return b
}

func (b *ShopBuilder) WithDomain(domain string) *ShopBuilder {
	b.Domain = domain
	return b
}

func (b *ShopBuilder) WithName(name string) *ShopBuilder {
	b.Name = name
	return b
}

func (b *ShopBuilder) AsInactive() *ShopBuilder {
	b.IsActive = false
	return b
}
