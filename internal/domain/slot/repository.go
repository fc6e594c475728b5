package slot

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// Store is what the generator needs from persistence. InsertSlot commits
// each row on its own.
type Store interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	InsertSlot(ctx context.Context, s *models.Slot) error
}

// Filter narrows a slot listing. Zero values are ignored; set fields are
// combined with AND.
type Filter struct {
	From     *time.Time
	To       *time.Time
	Resource string
}

type Repository interface {
	Store

	ListSlots(ctx context.Context, f Filter) ([]models.Slot, error)
}
