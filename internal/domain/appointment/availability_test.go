package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	// Fronteiras compartilhadas não conflitam: [10,11) e [11,12).
	assert.False(t, Overlaps(day(10, 0), day(11, 0), day(11, 0), day(12, 0)))
	assert.False(t, Overlaps(day(11, 0), day(12, 0), day(10, 0), day(11, 0)))

	// Qualquer invasão real conflita.
	assert.True(t, Overlaps(day(10, 0), day(11, 0), day(10, 30), day(11, 30)))
	assert.True(t, Overlaps(day(10, 30), day(11, 30), day(10, 0), day(11, 0)))

	// Continência total.
	assert.True(t, Overlaps(day(10, 0), day(12, 0), day(10, 30), day(11, 0)))
	assert.True(t, Overlaps(day(10, 30), day(11, 0), day(10, 0), day(12, 0)))
}

func TestHasConflict(t *testing.T) {
	existing := []Interval{
		{AppointmentID: 7, Start: day(10, 0), End: day(11, 0)},
		{AppointmentID: 8, Start: day(15, 0), End: day(16, 0)},
	}

	assert.True(t, HasConflict(existing, day(10, 30), day(11, 30), 0))
	assert.False(t, HasConflict(existing, day(11, 0), day(12, 0), 0))
	assert.False(t, HasConflict(existing, day(9, 0), day(10, 0), 0))

	// Remarcação: o próprio agendamento sai da comparação.
	assert.False(t, HasConflict(existing, day(10, 0), day(11, 0), 7))
	assert.True(t, HasConflict(existing, day(10, 0), day(11, 0), 8))
}
