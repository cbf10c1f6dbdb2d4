package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondBusiness_StatusMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"salon_not_found", http.StatusNotFound},
		{"staff_not_found", http.StatusNotFound},
		{"service_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{"forbidden", http.StatusForbidden},
		{"time_conflict", http.StatusConflict},
		{"invalid_state", http.StatusBadRequest},
		{"missing_reason", http.StatusBadRequest},
		{"empty_services", http.StatusBadRequest},
		{"invalid_date_or_time", http.StatusBadRequest},
		{"too_soon", http.StatusBadRequest},
		{"outside_working_hours", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			handled := respondBusiness(c, httperr.ErrBusiness(tc.code))
			require.True(t, handled)
			assert.Equal(t, tc.want, rec.Code)

			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondBusiness_IgnoresInfraErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	handled := respondBusiness(c, errors.New("connection reset"))
	assert.False(t, handled)
}
