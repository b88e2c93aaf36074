package request

import (
	"encoding/json"
	"time"

	"timebar/internal/usecase/commands"
)

type CreateTimerRequest struct {
	Kind            string          `json:"kind" binding:"required,oneof=fixed evergreen"`
	StartsAt        *time.Time      `json:"starts_at"`
	EndsAt          *time.Time      `json:"ends_at"`
	DurationMinutes int32           `json:"duration_minutes" binding:"omitempty,min=1,max=10080"`
	TargetingScope  string          `json:"targeting_scope" binding:"omitempty,oneof=all products collections"`
	TargetingIDs    []string        `json:"targeting_ids"`
	Appearance      json.RawMessage `json:"appearance"`
}

func (r *CreateTimerRequest) ToCommand() commands.CreateTimerRequest {
	return commands.CreateTimerRequest{
		Kind:            r.Kind,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		DurationMinutes: r.DurationMinutes,
		TargetingScope:  r.TargetingScope,
		TargetingIDs:    r.TargetingIDs,
		Appearance:      r.Appearance,
	}
}

type UpdateTimerRequest struct {
	StartsAt        *time.Time      `json:"starts_at"`
	EndsAt          *time.Time      `json:"ends_at"`
	DurationMinutes *int32          `json:"duration_minutes" binding:"omitempty,min=1,max=10080"`
	TargetingScope  *string         `json:"targeting_scope" binding:"omitempty,oneof=all products collections"`
	TargetingIDs    []string        `json:"targeting_ids"`
	Appearance      json.RawMessage `json:"appearance"`
}

func (r *UpdateTimerRequest) ToCommand() commands.UpdateTimerRequest {
	return commands.UpdateTimerRequest{
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		DurationMinutes: r.DurationMinutes,
		TargetingScope:  r.TargetingScope,
		TargetingIDs:    r.TargetingIDs,
		Appearance:      r.Appearance,
	}
}

type SetTimerActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
