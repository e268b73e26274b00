package appointment

import (
	"time"

	"github.com/petshopco/petshop-backend/internal/models"
)

type AvailabilityInput struct {
	Date      time.Time
	ServiceID string
	VetID     string // optional filter; empty means all vets
}

// VetAvailability is one veterinarian's remaining open slots for a date.
type VetAvailability struct {
	VetID          string   `json:"vetId"`
	VetName        string   `json:"vetName"`
	AvailableSlots []string `json:"availableSlots"`
}

// ===============================
// Domain Actions
// ===============================

// Cancel soft-terminates the appointment; the row is kept for history.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}
