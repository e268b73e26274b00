package appointment

import (
	"context"
	"time"

	"github.com/petshopco/petshop-backend/internal/audit"
	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID string

	PetID     string
	ServiceID string
	VetID     string

	Date  time.Time
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetPet(ctx, in.PetID); err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	// The slot is not re-verified here: the storefront queries
	// availability immediately before booking, and that result is
	// trusted. Two concurrent bookings can therefore land on the
	// same slot (known gap).
	ap := &models.Appointment{
		PetID:          in.PetID,
		ServiceID:      in.ServiceID,
		VeterinarianID: in.VetID,
		Date:           in.Date,
		Notes:          in.Notes,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentDetails(ctx, ap.ID)
}
