package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShopView represents read-optimized shop data for authentication flows
type ShopView struct {
	ID        uuid.UUID `json:"id"`
	Domain    string    `json:"domain"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ShopReadStore interface {
	// FindByDomain also returns the stored password hash so the caller can
	// verify credentials without a second round trip.
	FindByDomain(ctx context.Context, domain string) (*ShopView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
}
