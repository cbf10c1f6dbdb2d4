package appointment

import "time"

// ===============================
// Availability
// ===============================

// Interval é um agendamento ativo reduzido ao que importa para conflito.
type Interval struct {
	AppointmentID uint
	Start         time.Time
	End           time.Time
}

// Overlaps usa semântica de intervalo meio-aberto [s, e): um slot que
// termina exatamente quando outro começa NÃO conflita.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// HasConflict responde se [start, end) colide com algum intervalo ativo.
// excludeID > 0 tira da comparação o próprio agendamento sendo remarcado.
func HasConflict(existing []Interval, start, end time.Time, excludeID uint) bool {
	for _, iv := range existing {
		if excludeID != 0 && iv.AppointmentID == excludeID {
			continue
		}
		if Overlaps(iv.Start, iv.End, start, end) {
			return true
		}
	}
	return false
}

type AvailabilityInput struct {
	SalonID    uint
	StaffID    *uint
	ServiceIDs []uint
	Date       time.Time
}

type StaffSlots struct {
	StaffID   uint
	StaffName string
	Date      time.Time
	Slots     []TimeSlot
}
