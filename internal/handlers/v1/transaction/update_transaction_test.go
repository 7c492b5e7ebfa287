package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

func strPtr(s string) *string {
	return &s
}

// -- parseUpdateTransactionInput unit tests --

func TestParseUpdateTransactionInput_PartialPatch(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	input := &UpdateTransactionInput{
		ID: id.String(),
		Body: UpdateTransactionBody{
			Value:  strPtr("99.90"),
			Status: strPtr("Done"),
		},
	}

	parsedID, patch, err := parseUpdateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, id, parsedID)
	assert.True(t, patch.Value.Equal(decimal.RequireFromString("99.90")))
	assert.Equal(t, service.StatusDone, *patch.Status)
	assert.Nil(t, patch.Type)
	assert.Nil(t, patch.From)
}

func TestParseUpdateTransactionInput_InvalidValue(t *testing.T) {
	input := &UpdateTransactionInput{
		ID:   uuid.Must(uuid.NewV4()).String(),
		Body: UpdateTransactionBody{Value: strPtr("not-a-decimal")},
	}

	_, _, err := parseUpdateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	updated := serviceTransaction(accountID, "-99.9", "Done")

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, updated.ID, mock.MatchedBy(func(p service.TransactionPatch) bool {
		return p.Value != nil && p.Value.Equal(decimal.RequireFromString("99.90")) &&
			p.Status != nil && *p.Status == service.StatusDone
	})).Return(updated, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/account/transaction/"+updated.ID.String(), UpdateTransactionBody{
		Value:  strPtr("99.90"),
		Status: strPtr("Done"),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Done", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/account/transaction/"+id.String(), UpdateTransactionBody{
		From: strPtr("Alice"),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// enum:"Debit,Credit" violation.
	resp := newTestAPI(t, mockSvc).Put("/v1/account/transaction/"+uuid.Must(uuid.NewV4()).String(), UpdateTransactionBody{
		Type: strPtr("Transfer"),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateTransaction_InvalidValue(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Put("/v1/account/transaction/"+uuid.Must(uuid.NewV4()).String(), UpdateTransactionBody{
		Value: strPtr("not-a-decimal"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}
