package commands

import (
	"context"
	"log/slog"
	"time"

	"timebar/internal/domain/shop"
	"timebar/internal/infra"
	"timebar/internal/pkg/clock"

	"github.com/google/uuid"
)

type ImpressionEvent struct {
	TimerID    uuid.UUID `json:"timer_id"`
	ShopID     uuid.UUID `json:"shop_id"`
	ShopDomain string    `json:"shop_domain"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ImpressionPublisher fans recorded impressions out to the event stream.
// Publishing is best-effort: the counter in the database is the source of
// truth and a broker outage must not surface to the storefront.
type ImpressionPublisher interface {
	PublishImpression(ctx context.Context, event ImpressionEvent) error
}

type ImpressionRepository interface {
	IncrementImpressions(ctx context.Context, timerID uuid.UUID, shopID uuid.UUID) error
}

type ShopReader interface {
	FindShopByDomain(ctx context.Context, domain string) (*shop.Shop, error)
}

type ImpressionCommands interface {
	Record(ctx context.Context, shopDomain string, timerID uuid.UUID) error
}

type impressionUseCaseImpl struct {
	repo      ImpressionRepository
	shops     ShopReader
	publisher ImpressionPublisher
	clock     clock.Clock
}

func NewImpressionUseCase(repo ImpressionRepository, shops ShopReader, publisher ImpressionPublisher, clk clock.Clock) ImpressionCommands {
	return &impressionUseCaseImpl{repo: repo, shops: shops, publisher: publisher, clock: clk}
}

func (uc *impressionUseCaseImpl) Record(ctx context.Context, shopDomain string, timerID uuid.UUID) error {
	sh, err := uc.shops.FindShopByDomain(ctx, shopDomain)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Stale embeds keep pinging after a shop is removed; swallow it.
			slog.Debug("impression for unknown shop dropped", "shop_domain", shopDomain)
			return nil
		}
		return err
	}

	if err := uc.repo.IncrementImpressions(ctx, timerID, sh.ID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("impression for unknown timer dropped", "timer_id", timerID, "shop_id", sh.ID())
			return nil
		}
		return err
	}

	if uc.publisher != nil {
		event := ImpressionEvent{
			TimerID:    timerID,
			ShopID:     sh.ID(),
			ShopDomain: sh.Domain().String(),
			OccurredAt: uc.clock.Now(),
		}
		if err := uc.publisher.PublishImpression(ctx, event); err != nil {
			slog.Warn("impression event publish failed", "timer_id", timerID, "error", err)
		}
	}
	return nil
}
