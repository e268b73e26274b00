package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.VetAvailability, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	vets, err := uc.repo.ListAvailableVeterinarians(ctx, weekday, in.VetID)
	if err != nil {
		return nil, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	result := make([]domain.VetAvailability, 0, len(vets))

	for _, vet := range vets {

		schedule, err := uc.repo.GetSchedule(ctx, vet.ID, weekday)
		if err != nil || !schedule.IsAvailable {
			result = append(result, domain.VetAvailability{
				VetID:          vet.ID,
				VetName:        vet.FullName,
				AvailableSlots: []string{},
			})
			continue
		}

		allSlots := domain.GenerateTimeSlots(
			schedule.StartTime,
			schedule.EndTime,
			service.DurationMinutes,
		)

		appointments, err := uc.repo.ListAppointmentsForDay(
			ctx,
			vet.ID,
			dayStart,
			dayEnd,
		)
		if err != nil {
			return nil, err
		}

		booked := make(map[string]bool)
		for _, ap := range appointments {
			start := ap.Date.In(loc).Format("15:04")
			end := clockAdd(start, ap.Service.DurationMinutes)

			// half-open [start, end): a slot is blocked when its
			// start falls inside the occupied interval
			for _, slot := range allSlots {
				if slot >= start && slot < end {
					booked[slot] = true
				}
			}
		}

		available := make([]string, 0, len(allSlots))
		for _, slot := range allSlots {
			if !booked[slot] {
				available = append(available, slot)
			}
		}

		result = append(result, domain.VetAvailability{
			VetID:          vet.ID,
			VetName:        vet.FullName,
			AvailableSlots: available,
		})
	}

	return result, nil
}

// clockAdd adds minutes to an "HH:MM" value with plain arithmetic.
// Hours past 23 are not wrapped ("23:30" + 60 = "24:30"), which keeps
// the string comparison above monotonic to the end of the day.
func clockAdd(hm string, minutes int) string {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return hm
	}

	total := t.Hour()*60 + t.Minute() + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
