package dto

import (
	"github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type SlotDTO struct {
	ID                    uint   `json:"id"`
	Timestamp             string `json:"timestamp"`
	TimestampEnd          string `json:"timestamp_end"`
	FormattedTimestamp    string `json:"formatted_timestamp"`
	FormattedTimestampEnd string `json:"formatted_timestamp_end"`
	Free                  bool   `json:"free"`
	AvailableResources    string `json:"available_resources"`
	MaximumCapacity       int    `json:"maximum_capacity"`
}

func NewSlotList(in []models.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(in))
	for _, s := range in {
		out = append(out, SlotDTO{
			ID:                    s.ID,
			Timestamp:             s.Timestamp.Format(slot.TimestampLayout),
			TimestampEnd:          s.TimestampEnd.Format(slot.TimestampLayout),
			FormattedTimestamp:    s.FormattedTimestamp,
			FormattedTimestampEnd: s.FormattedTimestampEnd,
			Free:                  s.Free,
			AvailableResources:    s.AvailableResources,
			MaximumCapacity:       s.MaximumCapacity,
		})
	}
	return out
}
