package appointment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func TestMain(m *testing.M) {
	timezone.Configure("UTC")
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		SlotGranularityMinutes: 30,
		MinLeadTimeMinutes:     60,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// 2026-03-10 é uma terça; o seed cobre todos os dias da semana.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func baseInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		CustomerID: 20,
		SalonID:    1,
		StaffID:    2,
		ServiceIDs: []uint{3},
		Date:       "2026-03-10",
		Time:       "10:00",
	}
}

func newCreateUC(repo domain.Repository, now time.Time) *CreateAppointment {
	uc := NewCreateAppointment(repo, nil, nil, testConfig())
	uc.nowFn = fixedClock(now)
	return uc
}

func assertBusinessCode(t *testing.T, err error, want string) {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok, "esperava erro de negócio, veio: %v", err)
	assert.Equal(t, want, code)
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo, at(8, 0).AddDate(0, 0, -1))

	ap, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.NotEmpty(t, ap.Code)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, at(10, 0), ap.StartTime)
	assert.Equal(t, at(11, 0), ap.EndTime)
	assert.Equal(t, 60, ap.TotalDurationMin)
	assert.Equal(t, 80.0, ap.TotalPrice)

	// Snapshot do serviço congelado na reserva.
	require.Len(t, ap.Services, 1)
	assert.Equal(t, uint(3), ap.Services[0].ServiceID)
	assert.Equal(t, "Corte", ap.Services[0].ServiceName)
	assert.Equal(t, 80.0, ap.Services[0].Price)
	assert.Equal(t, 60, ap.Services[0].DurationMin)
}

func TestCreateAppointment_Conflict(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo, at(8, 0).AddDate(0, 0, -1))

	_, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	// Mesmo horário, outro cliente.
	in := baseInput()
	in.CustomerID = 21
	_, err = uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "time_conflict")
}

func TestCreateAppointment_SharedBoundaryAllowed(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo, at(8, 0).AddDate(0, 0, -1))

	_, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	// [10,11) e [11,12) convivem.
	in := baseInput()
	in.Time = "11:00"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateAppointment_EmptyServices(t *testing.T) {
	uc := newCreateUC(seededRepo(), at(8, 0).AddDate(0, 0, -1))

	in := baseInput()
	in.ServiceIDs = nil
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "empty_services")
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	uc := newCreateUC(seededRepo(), at(8, 0).AddDate(0, 0, -1))

	in := baseInput()
	in.ServiceIDs = []uint{3, 99}
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "service_not_found")
}

func TestCreateAppointment_StaffFromAnotherSalon(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo, at(8, 0).AddDate(0, 0, -1))

	in := baseInput()
	in.StaffID = 77
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "staff_not_found")
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	// Relógio 09:30, antecedência mínima 1h: 10:00 é cedo demais.
	uc := newCreateUC(seededRepo(), at(9, 30))

	_, err := uc.Execute(context.Background(), baseInput())
	assertBusinessCode(t, err, "too_soon")
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	uc := newCreateUC(seededRepo(), at(8, 0).AddDate(0, 0, -1))

	cases := map[string]string{
		"antes de abrir":    "08:00",
		"invadindo a pausa": "12:30",
		"após o fechamento": "17:30",
	}

	for name, hm := range cases {
		t.Run(name, func(t *testing.T) {
			in := baseInput()
			in.Time = hm
			_, err := uc.Execute(context.Background(), in)
			assertBusinessCode(t, err, "outside_working_hours")
		})
	}
}

func TestCreateAppointment_NoWorkingHoursMeansClosed(t *testing.T) {
	repo := seededRepo()
	repo.hours = nil
	uc := newCreateUC(repo, at(8, 0).AddDate(0, 0, -1))

	_, err := uc.Execute(context.Background(), baseInput())
	assertBusinessCode(t, err, "outside_working_hours")
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	uc := newCreateUC(seededRepo(), at(8, 0).AddDate(0, 0, -1))

	in := baseInput()
	in.Date = "10/03/2026"
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "invalid_date_or_time")
}
