package booking

import (
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

const CodeInvalidPeriod = "invalid_period"

// ValidatePeriod rejects bookings that end before they start.
func ValidatePeriod(b *models.Booking) error {
	if !b.BookedTo.After(b.BookedFrom) {
		return httperr.ErrBusiness(CodeInvalidPeriod)
	}
	return nil
}
