package appointment

import (
	"context"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/models"
)

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForOwner(ctx, userID)
}
