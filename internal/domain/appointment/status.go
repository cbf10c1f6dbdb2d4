package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending             Status = "pending"
	StatusConfirmed           Status = "confirmed"
	StatusCompleted           Status = "completed"
	StatusCancelledByCustomer Status = "cancelled_by_customer"
	StatusCancelledBySalon    Status = "cancelled_by_salon"
	StatusNoShow              Status = "no_show"
)

type Operation string

const (
	OpConfirm          Operation = "confirm"
	OpCancelByCustomer Operation = "cancel_by_customer"
	OpCancelBySalon    Operation = "cancel_by_salon"
	OpComplete         Operation = "complete"
	OpMarkNoShow       Operation = "mark_no_show"
)

// ===============================
// Transition table
// ===============================

// Tabela única de transições legais. Qualquer par (status, operação)
// fora dela é invalid_state — não existem checagens espalhadas.
var transitions = map[Status]map[Operation]Status{
	StatusPending: {
		OpConfirm:          StatusConfirmed,
		OpCancelByCustomer: StatusCancelledByCustomer,
		OpCancelBySalon:    StatusCancelledBySalon,
	},
	StatusConfirmed: {
		OpCancelByCustomer: StatusCancelledByCustomer,
		OpCancelBySalon:    StatusCancelledBySalon,
		OpComplete:         StatusCompleted,
		OpMarkNoShow:       StatusNoShow,
	},
}

// Machine guarda a única decisão de política configurável do ciclo de
// vida: aceitar ou não no-show de agendamento ainda pendente.
type Machine struct {
	AllowNoShowFromPending bool
}

func (m Machine) Next(current Status, op Operation) (Status, error) {
	if next, ok := transitions[current][op]; ok {
		return next, nil
	}
	if m.AllowNoShowFromPending && current == StatusPending && op == OpMarkNoShow {
		return StatusNoShow, nil
	}
	return "", httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelledByCustomer, StatusCancelledBySalon, StatusNoShow:
		return true
	}
	return false
}

// InactiveStatuses são os status que liberam o horário: agendamentos
// nesses estados não contam para conflito.
func InactiveStatuses() []Status {
	return []Status{
		StatusCancelledByCustomer,
		StatusCancelledBySalon,
		StatusNoShow,
	}
}
