package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListAvailableVeterinarians(
	ctx context.Context,
	weekday int,
	vetID string,
) ([]models.Veterinarian, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Veterinarian{}).
		Joins("JOIN weekly_schedules ON weekly_schedules.veterinarian_id = veterinarians.id").
		Where(
			"veterinarians.is_available = true AND weekly_schedules.day_of_week = ? AND weekly_schedules.is_available = true",
			weekday,
		)

	if vetID != "" {
		q = q.Where("veterinarians.id = ?", vetID)
	}

	var vets []models.Veterinarian
	if err := q.
		Distinct("veterinarians.*").
		Order("veterinarians.full_name ASC").
		Find(&vets).Error; err != nil {
		return nil, err
	}

	return vets, nil
}

func (r *AppointmentGormRepository) GetSchedule(
	ctx context.Context,
	vetID string,
	weekday int,
) (*models.WeeklySchedule, error) {

	var schedule models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where(
			"veterinarian_id = ? AND day_of_week = ? AND is_available = true",
			vetID, weekday,
		).
		First(&schedule).Error; err != nil {
		return nil, err
	}

	return &schedule, nil
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id string,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentDetails(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Service").
		Preload("Veterinarian").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForOwner(
	ctx context.Context,
	appointmentID string,
	ownerID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("appointments.id = ? AND pets.owner_id = ?", appointmentID, ownerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Service").
		Preload("Veterinarian").
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Order("appointments.date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	vetID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"veterinarian_id = ? AND status <> 'cancelled' AND date >= ? AND date < ?",
			vetID, dayStart, dayEnd,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
