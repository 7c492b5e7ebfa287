package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// UpdateTransactionBody is the whitelist of patchable fields. Omitted fields
// are left untouched.
type UpdateTransactionBody struct {
	Value    *string `json:"value,omitempty" doc:"Signed decimal value, stored verbatim"`
	Type     *string `json:"type,omitempty" enum:"Debit,Credit" doc:"Transaction type"`
	From     *string `json:"from,omitempty" doc:"Counterparty the value came from"`
	To       *string `json:"to,omitempty" doc:"Counterparty the value went to"`
	Anexo    *string `json:"anexo,omitempty" doc:"Attachment descriptor"`
	URLAnexo *string `json:"urlAnexo,omitempty" doc:"Attachment URL"`
	Status   *string `json:"status,omitempty" doc:"Lifecycle status, stored verbatim"`
}

// UpdateTransactionInput is the Huma input for patching a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for patching a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for patching transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/account/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/account/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Patches a transaction's whitelisted fields. Last writer wins.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionPatch, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	patch := service.TransactionPatch{
		From:     input.Body.From,
		To:       input.Body.To,
		Anexo:    input.Body.Anexo,
		URLAnexo: input.Body.URLAnexo,
	}

	if input.Body.Value != nil {
		value, err := decimal.NewFromString(*input.Body.Value)
		if err != nil {
			return uuid.Nil, service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid value", err)
		}
		patch.Value = &value
	}
	if input.Body.Type != nil {
		transactionType := service.TransactionType(*input.Body.Type)
		patch.Type = &transactionType
	}
	if input.Body.Status != nil {
		status := service.TransactionStatus(*input.Body.Status)
		patch.Status = &status
	}

	return id, patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.Update(ctx, id, patch)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}
	if updated == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &UpdateTransactionOutput{Body: FromService(*updated)}, nil
}
