package response

import (
	"encoding/json"

	"timebar/internal/usecase/queries"
)

type TimerResponse struct {
	ID              string          `json:"id"`
	Kind            string          `json:"kind"`
	Status          string          `json:"status"`
	StartsAt        *int64          `json:"starts_at,omitempty"`
	EndsAt          *int64          `json:"ends_at,omitempty"`
	DurationMinutes int32           `json:"duration_minutes,omitempty"`
	TargetingScope  string          `json:"targeting_scope"`
	TargetingIDs    []string        `json:"targeting_ids,omitempty"`
	Appearance      json.RawMessage `json:"appearance,omitempty"`
	Active          bool            `json:"active"`
	Impressions     int64           `json:"impressions"`
	CreatedAt       int64           `json:"created_at"`
	UpdatedAt       int64           `json:"updated_at"`
}

func FromTimerView(v *queries.TimerView) *TimerResponse {
	resp := &TimerResponse{
		ID:              v.ID.String(),
		Kind:            v.Kind,
		Status:          v.Status,
		DurationMinutes: v.DurationMinutes,
		TargetingScope:  v.TargetingScope,
		TargetingIDs:    v.TargetingIDs,
		Appearance:      v.Appearance,
		Active:          v.Active,
		Impressions:     v.Impressions,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
	if v.StartsAt != nil {
		ts := v.StartsAt.Unix()
		resp.StartsAt = &ts
	}
	if v.EndsAt != nil {
		ts := v.EndsAt.Unix()
		resp.EndsAt = &ts
	}
	return resp
}

type TimerListItemResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Status      string `json:"status"`
	Active      bool   `json:"active"`
	Impressions int64  `json:"impressions"`
	CreatedAt   int64  `json:"created_at"`
}

func FromTimerList(items []*queries.TimerListItem) []*TimerListItemResponse {
	res := make([]*TimerListItemResponse, len(items))
	for i, it := range items {
		res[i] = &TimerListItemResponse{
			ID:          it.ID.String(),
			Kind:        it.Kind,
			Status:      it.Status,
			Active:      it.Active,
			Impressions: it.Impressions,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}
