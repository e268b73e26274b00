package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petshopco/petshop-backend/internal/audit"
	"github.com/petshopco/petshop-backend/internal/httperr"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestBookAppointment_UnknownPet(t *testing.T) {
	repo := availabilityFixture()
	uc := NewBookAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:    "user-1",
		PetID:     "pet-missing",
		ServiceID: "svc-groom",
		VetID:     "vet-ana",
		Date:      monday.Add(9 * time.Hour),
	})

	assert.True(t, httperr.IsBusiness(err, "pet_not_found"))
	assert.Empty(t, repo.appointments, "no appointment row may be created")
}

func TestBookAppointment_CreatesScheduledAppointment(t *testing.T) {
	repo := availabilityFixture()
	repo.addPet("pet-rex", "user-1", "Rex")

	uc := NewBookAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:    "user-1",
		PetID:     "pet-rex",
		ServiceID: "svc-groom",
		VetID:     "vet-ana",
		Date:      monday.Add(9 * time.Hour),
		Notes:     "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, "first visit", ap.Notes)
	assert.Equal(t, monday.Add(9*time.Hour), ap.Date)

	// pet, service and veterinarian come back joined for display
	assert.Equal(t, "Rex", ap.Pet.Name)
	assert.Equal(t, "Grooming", ap.Service.Name)
	assert.Equal(t, "Ana Lima", ap.Veterinarian.FullName)

	require.Len(t, repo.appointments, 1)
}

func TestBookAppointment_DoesNotGuardAgainstDoubleBooking(t *testing.T) {
	// Booking trusts the availability the caller just fetched; two
	// bookings on the same slot both succeed. This pins the current
	// behavior down so a future fix shows up as a test change.
	repo := availabilityFixture()
	repo.addPet("pet-rex", "user-1", "Rex")
	repo.addPet("pet-mia", "user-2", "Mia")

	uc := NewBookAppointment(repo, testDispatcher())

	slot := monday.Add(9 * time.Hour)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID: "user-1", PetID: "pet-rex", ServiceID: "svc-groom", VetID: "vet-ana", Date: slot,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		UserID: "user-2", PetID: "pet-mia", ServiceID: "svc-groom", VetID: "vet-ana", Date: slot,
	})
	require.NoError(t, err)

	assert.Len(t, repo.appointments, 2)
}
