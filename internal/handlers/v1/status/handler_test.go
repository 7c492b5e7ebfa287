package status

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/cortex-bank-server/internal/logging"
)

func TestStatusHandler_Get(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logging.SetupLogging())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	err := handler.Handler(recorder, req, logData)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestStatusHandler_MethodNotGet(t *testing.T) {
	handler := NewHandler()
	logData := logging.NewLogData(logging.SetupLogging())

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	recorder := httptest.NewRecorder()

	err := handler.Handler(recorder, req, logData)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
