package appointment

import (
	"context"
	"time"

	"github.com/petshopco/petshop-backend/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// ListAvailableVeterinarians returns vets that are globally
	// available and have an active schedule row for the weekday,
	// optionally filtered to a single vet, ordered by name.
	ListAvailableVeterinarians(
		ctx context.Context,
		weekday int,
		vetID string,
	) ([]models.Veterinarian, error)

	// GetSchedule returns the vet's active schedule row for the
	// weekday; disabled rows are never returned.
	GetSchedule(
		ctx context.Context,
		vetID string,
		weekday int,
	) (*models.WeeklySchedule, error)

	// -------- Pet --------
	GetPet(
		ctx context.Context,
		id string,
	) (*models.Pet, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointmentDetails loads an appointment with its pet,
	// service and veterinarian joined in.
	GetAppointmentDetails(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// GetAppointmentForOwner resolves an appointment only when its
	// pet belongs to ownerID; callers cannot tell a foreign row from
	// a missing one.
	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID string,
		ownerID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForOwner(
		ctx context.Context,
		ownerID string,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListAppointmentsForDay(
		ctx context.Context,
		vetID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)
}
