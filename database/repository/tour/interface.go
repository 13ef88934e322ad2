package tourRepo

import (
	"time"

	"aptiva/models"
)

// TourRepository persists booked tours for listing and reconciliation.
type TourRepository interface {
	Create(rec *models.TourRecord) error
	GetByID(id string) (*models.TourRecord, error)
	ListUpcoming(userID string, from time.Time, daysAhead int) ([]models.TourRecord, error)
	UpdateStatus(id string, status models.BookingStatus) error
}
