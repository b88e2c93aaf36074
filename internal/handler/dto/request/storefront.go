package request

import "github.com/google/uuid"

type RecordImpressionRequest struct {
	Shop    string    `json:"shop" binding:"required"`
	TimerID uuid.UUID `json:"timer_id" binding:"required"`
}
