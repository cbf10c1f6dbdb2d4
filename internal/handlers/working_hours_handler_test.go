package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRows(t *testing.T) {
	staffID := uint(7)

	days := []WorkingDayConfig{
		{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00", BreakStart: "13:00", BreakEnd: "14:00"},
		{Weekday: 0, Closed: true},
	}

	rows := weekRows(4, &staffID, days)
	require.Len(t, rows, 2)

	assert.Equal(t, uint(4), rows[0].SalonID)
	require.NotNil(t, rows[0].StaffID)
	assert.Equal(t, uint(7), *rows[0].StaffID)
	assert.Equal(t, 1, rows[0].Weekday)
	assert.Equal(t, "09:00", rows[0].OpenTime)
	assert.Equal(t, "14:00", rows[0].BreakEnd)

	assert.True(t, rows[1].Closed)

	// Grade padrão do salão: staff nulo em todas as linhas.
	salonRows := weekRows(4, nil, days)
	for _, r := range salonRows {
		assert.Nil(t, r.StaffID)
	}

	assert.Empty(t, weekRows(4, nil, nil))
}
