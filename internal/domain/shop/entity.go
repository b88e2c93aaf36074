package shop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrShopNotFound = errors.New("shop not found")

// Shop is one tenant of the service.
type Shop struct {
	id        uuid.UUID
	domain    Domain
	name      string
	active    bool
	createdAt time.Time
}

func NewShop(id uuid.UUID, domain Domain, name string, now time.Time) *Shop {
	return &Shop{
		id:        id,
		domain:    domain,
		name:      name,
		active:    true,
		createdAt: now,
	}
}

func Reconstruct(id uuid.UUID, domain Domain, name string, active bool, createdAt time.Time) *Shop {
	return &Shop{
		id:        id,
		domain:    domain,
		name:      name,
		active:    active,
		createdAt: createdAt,
	}
}

func (s *Shop) ID() uuid.UUID        { return s.id }
func (s *Shop) Domain() Domain       { return s.domain }
func (s *Shop) Name() string         { return s.name }
func (s *Shop) Active() bool         { return s.active }
func (s *Shop) CreatedAt() time.Time { return s.createdAt }
