package timer

import (
	"time"

	"github.com/google/uuid"
)

// Select picks the single timer to display for a storefront context, or nil
// when nothing applies (a normal outcome, not an error). Among eligible
// candidates the most recently created wins: merchants expect their latest
// configuration to take precedence.
//
// Select is a pure query; impression counting is a separate action owned by
// the caller.
func Select(candidates []*Timer, shopID uuid.UUID, now time.Time, productID string, collectionIDs []string) *Timer {
	var best *Timer
	for _, t := range candidates {
		if t == nil || t.shopID != shopID {
			continue
		}
		if !t.showableAt(now) {
			continue
		}
		if !Matches(t, productID, collectionIDs) {
			continue
		}
		if best == nil || t.createdAt.After(best.createdAt) {
			best = t
		}
	}
	return best
}
