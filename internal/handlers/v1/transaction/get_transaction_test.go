package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHTTP_GetTransaction_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	tx := serviceTransaction(accountID, "-42", "Done")

	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, tx.ID).Return(tx, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/transaction/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.ID)
	assert.Equal(t, accountID.String(), body.AccountID)
	assert.Equal(t, "Done", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, id).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/account/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Get("/v1/account/transaction/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Get")
}

func TestHTTP_GetTransaction_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("connection refused"))

	resp := newTestAPI(t, mockSvc).Get("/v1/account/transaction/" + id.String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
