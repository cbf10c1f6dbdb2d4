package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newAvailabilityUC(repo domain.Repository, now time.Time) *GetAvailability {
	uc := NewGetAvailability(repo, testConfig())
	uc.nowFn = fixedClock(now)
	return uc
}

func availabilityInput(staffID *uint) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		SalonID:    1,
		StaffID:    staffID,
		ServiceIDs: []uint{3},
		Date:       at(0, 0),
	}
}

func TestGetAvailability_SingleStaff(t *testing.T) {
	repo := seededRepo()
	uc := newAvailabilityUC(repo, at(8, 0).AddDate(0, 0, -1))

	staffID := uint(2)
	result, err := uc.Execute(context.Background(), availabilityInput(&staffID))
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry := result[0]
	assert.Equal(t, uint(2), entry.StaffID)
	assert.Equal(t, "Marina", entry.StaffName)

	// 09:00..12:00 + 14:00..17:00 em passos de 30min, serviço de 60min.
	require.Len(t, entry.Slots, 14)
	for _, s := range entry.Slots {
		assert.True(t, s.Available, "slot %s deveria estar livre", s.Start.Format("15:04"))
	}
}

func TestGetAvailability_MarksBookedSlots(t *testing.T) {
	repo := seededRepo()
	seedAppointment(repo, domain.StatusConfirmed) // [10:00, 11:00)

	uc := newAvailabilityUC(repo, at(8, 0).AddDate(0, 0, -1))

	staffID := uint(2)
	result, err := uc.Execute(context.Background(), availabilityInput(&staffID))
	require.NoError(t, err)
	require.Len(t, result, 1)

	available := map[string]bool{}
	for _, s := range result[0].Slots {
		available[s.Start.Format("15:04")] = s.Available
	}

	assert.True(t, available["09:00"]) // termina 10:00, encosta sem colidir
	assert.False(t, available["09:30"])
	assert.False(t, available["10:00"])
	assert.False(t, available["10:30"])
	assert.True(t, available["11:00"]) // começa no fim do ocupado
}

func TestGetAvailability_CancelledDoesNotBlock(t *testing.T) {
	repo := seededRepo()
	seedAppointment(repo, domain.StatusCancelledBySalon)

	uc := newAvailabilityUC(repo, at(8, 0).AddDate(0, 0, -1))

	staffID := uint(2)
	result, err := uc.Execute(context.Background(), availabilityInput(&staffID))
	require.NoError(t, err)
	require.Len(t, result, 1)

	for _, s := range result[0].Slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_AllStaff(t *testing.T) {
	repo := seededRepo()
	repo.staff[4] = seededStaff(4)

	uc := newAvailabilityUC(repo, at(8, 0).AddDate(0, 0, -1))

	result, err := uc.Execute(context.Background(), availabilityInput(nil))
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGetAvailability_StaffGridReplacesSalonGrid(t *testing.T) {
	repo := seededRepo()

	// Grade própria da profissional 2: só meio período, sem pausa.
	staffID := uint(2)
	for wd := 0; wd < 7; wd++ {
		repo.hours = append(repo.hours, models.WorkingHours{
			SalonID:   1,
			StaffID:   &staffID,
			Weekday:   wd,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		})
	}

	uc := newAvailabilityUC(repo, at(8, 0).AddDate(0, 0, -1))

	result, err := uc.Execute(context.Background(), availabilityInput(&staffID))
	require.NoError(t, err)
	require.Len(t, result, 1)

	slots := result[0].Slots
	require.NotEmpty(t, slots)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(11, 0), slots[len(slots)-1].Start)
}

func TestGetAvailability_Errors(t *testing.T) {
	uc := newAvailabilityUC(seededRepo(), at(8, 0))

	in := availabilityInput(nil)
	in.SalonID = 99
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "salon_not_found")

	in = availabilityInput(nil)
	in.ServiceIDs = nil
	_, err = uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "empty_services")

	// Um ID desconhecido no meio de válidos também rejeita: a lista
	// precisa resolver por inteiro, como no Create.
	in = availabilityInput(nil)
	in.ServiceIDs = []uint{3, 999}
	_, err = uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "service_not_found")

	staffID := uint(77)
	_, err = uc.Execute(context.Background(), availabilityInput(&staffID))
	assertBusinessCode(t, err, "staff_not_found")
}
