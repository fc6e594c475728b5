package dto

import (
	"github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type BookingDTO struct {
	ID         uint   `json:"id"`
	ResourceID uint   `json:"resource_id"`
	UserID     uint   `json:"user_id"`
	BookedFrom string `json:"booked_from"`
	BookedTo   string `json:"booked_to"`
	Notes      string `json:"notes"`
}

func NewBookingList(in []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(in))
	for _, b := range in {
		out = append(out, BookingDTO{
			ID:         b.ID,
			ResourceID: b.ResourceID,
			UserID:     b.UserID,
			BookedFrom: b.BookedFrom.Format(slot.TimestampLayout),
			BookedTo:   b.BookedTo.Format(slot.TimestampLayout),
			Notes:      b.Notes,
		})
	}
	return out
}
