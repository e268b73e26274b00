package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/petshopco/petshop-backend/internal/domain/appointment"
	"github.com/petshopco/petshop-backend/internal/httperr"
	"github.com/petshopco/petshop-backend/internal/models"
)

// 2025-12-22 is a Monday (weekday 1).
var monday = time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)

func availabilityFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.addService("svc-groom", "Grooming", 30, true)
	repo.addVet("vet-ana", "Ana Lima")
	repo.addSchedule("vet-ana", 1, "09:00", "11:00")
	return repo
}

func TestGetAvailability_OpenDay(t *testing.T) {
	repo := availabilityFixture()
	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "vet-ana", got[0].VetID)
	assert.Equal(t, "Ana Lima", got[0].VetName)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_ExcludesBookedSlot(t *testing.T) {
	repo := availabilityFixture()
	repo.addAppointment(&models.Appointment{
		ID:             "appt-1",
		PetID:          "pet-1",
		ServiceID:      "svc-groom",
		VeterinarianID: "vet-ana",
		Date:           monday.Add(9*time.Hour + 30*time.Minute),
		Status:         "scheduled",
	})

	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_LongerAppointmentBlocksEverySlotItCovers(t *testing.T) {
	repo := availabilityFixture()
	repo.addService("svc-surgery", "Surgery", 60, true)
	repo.addAppointment(&models.Appointment{
		ID:             "appt-1",
		PetID:          "pet-1",
		ServiceID:      "svc-surgery",
		VeterinarianID: "vet-ana",
		Date:           monday.Add(9*time.Hour + 30*time.Minute),
		Status:         "scheduled",
	})

	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	// [09:30, 10:30) blocks the 09:30 and 10:00 starts only.
	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00", "10:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_CancelledAppointmentsDoNotBlock(t *testing.T) {
	repo := availabilityFixture()
	repo.addAppointment(&models.Appointment{
		ID:             "appt-1",
		PetID:          "pet-1",
		ServiceID:      "svc-groom",
		VeterinarianID: "vet-ana",
		Date:           monday.Add(9*time.Hour + 30*time.Minute),
		Status:         "cancelled",
	})

	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_IsIdempotent(t *testing.T) {
	repo := availabilityFixture()
	uc := NewGetAvailability(repo)

	in := domain.AvailabilityInput{Date: monday, ServiceID: "svc-groom"}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailability_VetFilter(t *testing.T) {
	repo := availabilityFixture()
	repo.addVet("vet-bruno", "Bruno Costa")
	repo.addSchedule("vet-bruno", 1, "13:00", "15:00")

	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
		VetID:     "vet-bruno",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "vet-bruno", got[0].VetID)
	assert.Equal(t, []string{"13:00", "13:30", "14:00", "14:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_DisabledRowDoesNotMaskActiveOne(t *testing.T) {
	// Two rows for the same weekday: an older disabled one first, then
	// the live one. Only the active row may drive slot generation.
	repo := newFakeRepo()
	repo.addService("svc-groom", "Grooming", 30, true)
	repo.addVet("vet-ana", "Ana Lima")
	repo.addDisabledSchedule("vet-ana", 1, "13:00", "15:00")
	repo.addSchedule("vet-ana", 1, "09:00", "11:00")

	uc := NewGetAvailability(repo)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got[0].AvailableSlots)
}

func TestGetAvailability_NoScheduleForWeekday(t *testing.T) {
	repo := availabilityFixture()
	uc := NewGetAvailability(repo)

	// Tuesday: the vet only works Mondays.
	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday.AddDate(0, 0, 1),
		ServiceID: "svc-groom",
	})
	require.NoError(t, err)

	assert.Empty(t, got)
}

func TestGetAvailability_UnknownService(t *testing.T) {
	repo := availabilityFixture()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-missing",
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_InactiveService(t *testing.T) {
	repo := availabilityFixture()
	repo.addService("svc-old", "Retired", 30, false)

	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: "svc-old",
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
