package appointment

import (
	"context"
	"time"

	"github.com/petshopco/petshop-backend/internal/audit"
	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/models"
)

type UpdateAppointmentInput struct {
	AppointmentID string
	UserID        string

	// Only supplied fields are changed.
	Date  *time.Time
	VetID *string
	Notes *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.VetID != nil && *in.VetID != "" {
		ap.VeterinarianID = *in.VetID
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// Same trust-the-caller policy as booking: the new date/vet
	// combination is not checked against open slots.
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentDetails(ctx, ap.ID)
}
