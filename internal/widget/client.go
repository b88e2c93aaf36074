// Package widget is the embeddable storefront runtime: it fetches the
// selected timer for a context, drives the countdown display, owns the
// evergreen per-visitor window, and reports a single view impression. All
// network calls are single-attempt and fail open; a broken backend must
// never break the host page.
package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimerPayload is the minimized record the storefront read path returns:
// id, kind, appearance and the window fields of that kind. Never the full
// record.
type TimerPayload struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	Appearance      json.RawMessage `json:"appearance,omitempty"`
	StartsAt        *time.Time      `json:"starts_at,omitempty"`
	EndsAt          *time.Time      `json:"ends_at,omitempty"`
	DurationMinutes int32           `json:"duration_minutes,omitempty"`
}

// TimerFetcher resolves the timer to display for a storefront context.
// A nil payload with nil error means "no timer", a normal outcome.
type TimerFetcher interface {
	FetchTimer(ctx context.Context, shop, productID string, collectionIDs []string) (*TimerPayload, error)
}

// ImpressionReporter records one "timer was shown" event.
type ImpressionReporter interface {
	ReportImpression(ctx context.Context, shop string, timerID uuid.UUID) error
}

// Client talks to the public storefront API.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 5 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) FetchTimer(ctx context.Context, shop, productID string, collectionIDs []string) (*TimerPayload, error) {
	q := url.Values{}
	q.Set("shop", shop)
	if productID != "" {
		q.Set("product_id", productID)
	}
	if len(collectionIDs) > 0 {
		q.Set("collection_ids", strings.Join(collectionIDs, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/storefront/timer?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil, nil
	case http.StatusOK:
		var payload TimerPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, err
		}
		return &payload, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("storefront timer returned status %d: %s", resp.StatusCode, body)
	}
}

func (c *Client) ReportImpression(ctx context.Context, shop string, timerID uuid.UUID) error {
	body, err := json.Marshal(map[string]string{
		"shop":     shop,
		"timer_id": timerID.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/storefront/impressions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("impression report returned status %d", resp.StatusCode)
	}
	return nil
}
