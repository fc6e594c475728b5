package handlers

import (
	"time"

	"github.com/BruksfildServices01/booking-api/internal/domain/slot"
)

// Bookings and slot filters are naive local times in the service zone.

func parseDateIn(loc *time.Location, v string) (time.Time, error) {
	return time.ParseInLocation(slot.DateLayout, v, loc)
}

func parseTimestampIn(loc *time.Location, v string) (time.Time, error) {
	return time.ParseInLocation(slot.TimestampLayout, v, loc)
}
