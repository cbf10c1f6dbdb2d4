package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Toda mudança de status passa por aqui; a Machine decide a legalidade
// e estas funções aplicam os carimbos correspondentes.

func (m Machine) Confirm(ap *models.Appointment, salonNote string, now time.Time) error {
	next, err := m.Next(Status(ap.Status), OpConfirm)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.ConfirmedAt = &now
	if salonNote != "" {
		ap.SalonNote = salonNote
	}
	return nil
}

func (m Machine) CancelByCustomer(ap *models.Appointment, reason string, now time.Time) error {
	return m.cancel(ap, OpCancelByCustomer, reason, now)
}

func (m Machine) CancelBySalon(ap *models.Appointment, reason string, now time.Time) error {
	return m.cancel(ap, OpCancelBySalon, reason, now)
}

func (m Machine) cancel(ap *models.Appointment, op Operation, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return httperr.ErrBusiness("missing_reason")
	}

	next, err := m.Next(Status(ap.Status), op)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CancelledAt = &now
	ap.CancellationReason = reason
	return nil
}

func (m Machine) Complete(ap *models.Appointment, now time.Time) error {
	next, err := m.Next(Status(ap.Status), OpComplete)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CompletedAt = &now
	return nil
}

func (m Machine) MarkNoShow(ap *models.Appointment) error {
	next, err := m.Next(Status(ap.Status), OpMarkNoShow)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// Reschedule move o agendamento mantendo duração, status e histórico.
// Um confirmado continua confirmado; ConfirmedAt não é refeito.
// A checagem de conflito (excluindo o próprio id) é do repositório.
func Reschedule(ap *models.Appointment, newDate, newStart time.Time, newStaffID *uint) error {
	if IsTerminal(Status(ap.Status)) {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.Date = newDate
	ap.StartTime = newStart
	ap.EndTime = newStart.Add(time.Duration(ap.TotalDurationMin) * time.Minute)
	if newStaffID != nil {
		ap.StaffID = *newStaffID
	}
	return nil
}
