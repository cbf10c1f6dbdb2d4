package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// As colunas de horário migram como timestamptz, então o range da
// constraint precisa ser tstzrange — tsrange(timestamptz, ...) nem
// existe no Postgres e a constraint nunca seria criada.
func TestNoOverlapConstraintDDL_MatchesColumnTypes(t *testing.T) {
	assert.Contains(t, noOverlapConstraintDDL, "tstzrange(start_time, end_time)")
	assert.NotContains(t, noOverlapConstraintDDL, "tsrange(start_time")
}

// A constraint só vigia os status que ocupam horário; os inativos
// (cancelamentos, no-show) ficam de fora para liberar a agenda.
func TestNoOverlapConstraintDDL_CoversActiveStatuses(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
	} {
		assert.Contains(t, noOverlapConstraintDDL, "'"+string(s)+"'")
	}

	for _, s := range domain.InactiveStatuses() {
		assert.False(t, strings.Contains(noOverlapConstraintDDL, "'"+string(s)+"'"),
			"status inativo %s não deveria estar na constraint", s)
	}
}
