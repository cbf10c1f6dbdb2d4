package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// O total reflete o salão inteiro, não o tamanho da página listada.
func TestReviewSummary_CountIsTotalNotPageSize(t *testing.T) {
	page := make([]models.Review, 50)

	out := reviewSummary(4.6, 120, page)

	assert.Equal(t, int64(120), out["count"])
	assert.Equal(t, 4.6, out["average"])
	assert.Len(t, out["items"], 50)
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("3,5, 8")
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5, 8}, ids)

	_, err = parseIDList("3,abc")
	assert.Error(t, err)

	ids, err = parseIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)
}
