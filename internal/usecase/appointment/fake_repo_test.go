package appointment

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/models"
)

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRepo is an in-memory domain.Repository for use case tests.
type fakeRepo struct {
	services     map[string]*models.Service
	vets         map[string]*models.Veterinarian
	schedules    map[string][]*models.WeeklySchedule // by vetID, insertion order
	pets         map[string]*models.Pet
	appointments map[string]*models.Appointment

	calls int // persistence round-trips, to assert what never ran
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[string]*models.Service{},
		vets:         map[string]*models.Veterinarian{},
		schedules:    map[string][]*models.WeeklySchedule{},
		pets:         map[string]*models.Pet{},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) addService(id, name string, duration int, active bool) {
	r.services[id] = &models.Service{ID: id, Name: name, DurationMinutes: duration, IsActive: active}
}

func (r *fakeRepo) addVet(id, name string) {
	r.vets[id] = &models.Veterinarian{ID: id, FullName: name, IsAvailable: true}
}

func (r *fakeRepo) addSchedule(vetID string, weekday int, start, end string) {
	r.addScheduleRow(vetID, weekday, start, end, true)
}

func (r *fakeRepo) addDisabledSchedule(vetID string, weekday int, start, end string) {
	r.addScheduleRow(vetID, weekday, start, end, false)
}

func (r *fakeRepo) addScheduleRow(vetID string, weekday int, start, end string, available bool) {
	r.schedules[vetID] = append(r.schedules[vetID], &models.WeeklySchedule{
		VeterinarianID: vetID,
		DayOfWeek:      weekday,
		StartTime:      start,
		EndTime:        end,
		IsAvailable:    available,
	})
}

func (r *fakeRepo) addPet(id, ownerID, name string) {
	r.pets[id] = &models.Pet{ID: id, OwnerID: ownerID, Name: name}
}

func (r *fakeRepo) addAppointment(ap *models.Appointment) {
	cp := *ap
	r.appointments[ap.ID] = &cp
}

// -------------------------
// domain.Repository
// -------------------------

func (r *fakeRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	r.calls++
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeRepo) ListAvailableVeterinarians(ctx context.Context, weekday int, vetID string) ([]models.Veterinarian, error) {
	r.calls++

	var out []models.Veterinarian
	for _, v := range r.vets {
		if !v.IsAvailable {
			continue
		}
		if vetID != "" && v.ID != vetID {
			continue
		}
		onDuty := false
		for _, ws := range r.schedules[v.ID] {
			if ws.DayOfWeek == weekday && ws.IsAvailable {
				onDuty = true
				break
			}
		}
		if !onDuty {
			continue
		}
		out = append(out, *v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *fakeRepo) GetSchedule(ctx context.Context, vetID string, weekday int) (*models.WeeklySchedule, error) {
	r.calls++
	for _, ws := range r.schedules[vetID] {
		if ws.DayOfWeek == weekday && ws.IsAvailable {
			return ws, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	r.calls++
	p, ok := r.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.calls++
	if ap.ID == "" {
		ap.ID = "appt-" + time.Now().Format("150405.000000000")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointmentDetails(ctx context.Context, id string) (*models.Appointment, error) {
	r.calls++
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	cp := *ap
	if p, ok := r.pets[cp.PetID]; ok {
		cp.Pet = *p
	}
	if s, ok := r.services[cp.ServiceID]; ok {
		cp.Service = *s
	}
	if v, ok := r.vets[cp.VeterinarianID]; ok {
		cp.Veterinarian = *v
	}
	return &cp, nil
}

func (r *fakeRepo) GetAppointmentForOwner(ctx context.Context, appointmentID, ownerID string) (*models.Appointment, error) {
	r.calls++
	ap, ok := r.appointments[appointmentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	pet, ok := r.pets[ap.PetID]
	if !ok || pet.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.calls++
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointmentsForOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	r.calls++

	var out []models.Appointment
	for _, ap := range r.appointments {
		pet, ok := r.pets[ap.PetID]
		if !ok || pet.OwnerID != ownerID {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDay(ctx context.Context, vetID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	r.calls++

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.VeterinarianID != vetID {
			continue
		}
		if ap.Status == "cancelled" {
			continue
		}
		if ap.Date.Before(dayStart) || !ap.Date.Before(dayEnd) {
			continue
		}

		cp := *ap
		if s, ok := r.services[cp.ServiceID]; ok {
			cp.Service = *s
		}
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
