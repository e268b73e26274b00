package appointment

import (
	"context"
	"time"

	"github.com/petshopco/petshop-backend/internal/audit"
	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	now func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	userID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	domain.Cancel(ap, uc.now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
