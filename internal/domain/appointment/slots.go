package appointment

import "time"

// ===============================
// Slot generation
// ===============================

type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// GenerateSlots percorre o expediente em passos fixos de granularity e
// emite os candidatos que comportam totalDuration antes do fechamento.
// Função pura: disponibilidade NÃO é resolvida aqui (fica sempre false
// até MarkAvailability), para que a lista de candidatos dependa só da
// grade, da duração e do relógio.
//
// Regras, na ordem:
//  1. candidato dentro da pausa → pula direto para o fim da pausa;
//  2. candidato que invadiria a pausa → descartado, segue o passo;
//  3. candidato antes de now+leadTime → descartado, segue o passo.
func GenerateSlots(
	w WorkingWindow,
	totalDuration time.Duration,
	granularity time.Duration,
	leadTime time.Duration,
	now time.Time,
) []TimeSlot {

	if w.Closed || totalDuration <= 0 || granularity <= 0 {
		return nil
	}

	minStart := now.Add(leadTime)

	var slots []TimeSlot
	for cur := w.Open; !cur.Add(totalDuration).After(w.Close); {

		if w.HasBreak && !cur.Before(w.BreakStart) && cur.Before(w.BreakEnd) {
			cur = w.BreakEnd
			continue
		}

		end := cur.Add(totalDuration)

		if w.HasBreak && cur.Before(w.BreakEnd) && end.After(w.BreakStart) {
			cur = cur.Add(granularity)
			continue
		}

		if cur.Before(minStart) {
			cur = cur.Add(granularity)
			continue
		}

		slots = append(slots, TimeSlot{Start: cur, End: end})
		cur = cur.Add(granularity)
	}

	return slots
}

// MarkAvailability resolve a flag de cada slot contra os agendamentos
// ativos do profissional no dia (segunda passada, ver GenerateSlots).
func MarkAvailability(slots []TimeSlot, existing []Interval) {
	for i := range slots {
		slots[i].Available = !HasConflict(existing, slots[i].Start, slots[i].End, 0)
	}
}
