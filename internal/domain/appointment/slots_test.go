package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func testWindow() WorkingWindow {
	return WorkingWindow{
		Date:       day(0, 0),
		Open:       day(9, 0),
		Close:      day(18, 0),
		HasBreak:   true,
		BreakStart: day(13, 0),
		BreakEnd:   day(14, 0),
	}
}

func TestGenerateSlots_FullDayWithBreak(t *testing.T) {
	// 09:00–18:00, pausa 13:00–14:00, serviço de 60min, passo de 30min,
	// relógio bem antes do dia (lead time irrelevante).
	slots := GenerateSlots(testWindow(), 60*time.Minute, 30*time.Minute, time.Hour, day(0, 0))

	require.NotEmpty(t, slots)

	assert.Equal(t, day(9, 0), slots[0].Start)
	assert.Equal(t, day(17, 0), slots[len(slots)-1].Start)

	starts := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
		assert.Equal(t, s.Start.Add(60*time.Minute), s.End)
	}

	// 12:00 termina exatamente no início da pausa: meio-aberto, cabe.
	assert.True(t, starts[day(12, 0)])

	// 12:30 e 13:30 invadiriam a pausa; 13:00 está dentro dela.
	assert.False(t, starts[day(12, 30)])
	assert.False(t, starts[day(13, 0)])
	assert.False(t, starts[day(13, 30)])

	// Retoma no fim da pausa.
	assert.True(t, starts[day(14, 0)])

	// 17:30 + 60min estouraria o fechamento.
	assert.False(t, starts[day(17, 30)])

	// 7 slots de manhã (09:00..12:00) + 7 à tarde (14:00..17:00).
	assert.Len(t, slots, 14)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	a := GenerateSlots(testWindow(), 60*time.Minute, 30*time.Minute, time.Hour, day(0, 0))
	b := GenerateSlots(testWindow(), 60*time.Minute, 30*time.Minute, time.Hour, day(0, 0))
	assert.Equal(t, a, b)
}

func TestGenerateSlots_LeadTimeCutsMorning(t *testing.T) {
	// Relógio às 10:15 com 1h de antecedência mínima: primeiro início
	// aceito é 11:30 (11:00 < 11:15).
	slots := GenerateSlots(testWindow(), 60*time.Minute, 30*time.Minute, time.Hour, day(10, 15))

	require.NotEmpty(t, slots)
	assert.Equal(t, day(11, 30), slots[0].Start)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	w := ClosedWindow(day(0, 0))
	assert.Nil(t, GenerateSlots(w, 30*time.Minute, 30*time.Minute, 0, day(0, 0)))
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	w := WorkingWindow{
		Date:  day(0, 0),
		Open:  day(9, 0),
		Close: day(12, 0),
	}
	assert.Empty(t, GenerateSlots(w, 4*time.Hour, 30*time.Minute, 0, day(0, 0)))
}

func TestGenerateSlots_NoBreak(t *testing.T) {
	w := WorkingWindow{
		Date:  day(0, 0),
		Open:  day(9, 0),
		Close: day(11, 0),
	}
	slots := GenerateSlots(w, 30*time.Minute, 30*time.Minute, 0, day(0, 0))

	require.Len(t, slots, 4)
	assert.Equal(t, day(9, 0), slots[0].Start)
	assert.Equal(t, day(10, 30), slots[3].Start)
}

func TestMarkAvailability(t *testing.T) {
	w := WorkingWindow{
		Date:  day(0, 0),
		Open:  day(9, 0),
		Close: day(11, 0),
	}
	slots := GenerateSlots(w, 30*time.Minute, 30*time.Minute, 0, day(0, 0))
	require.Len(t, slots, 4)

	existing := []Interval{
		{AppointmentID: 1, Start: day(9, 30), End: day(10, 0)},
	}
	MarkAvailability(slots, existing)

	assert.True(t, slots[0].Available)  // 09:00–09:30 encosta, não colide
	assert.False(t, slots[1].Available) // 09:30–10:00
	assert.True(t, slots[2].Available)  // 10:00–10:30 começa no fim do outro
	assert.True(t, slots[3].Available)
}
