package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// CompleteTransactionInput is the Huma input for completing a transaction.
type CompleteTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// CompleteTransactionOutput is the Huma output for completing a transaction.
type CompleteTransactionOutput struct {
	Body Transaction
}

// transactionCompleter is the interface for completing transactions.
type transactionCompleter interface {
	Complete(ctx context.Context, id uuid.UUID) (*service.Transaction, error)
}

// CompleteTransactionHandler handles PATCH /v1/account/transaction/{id}/complete.
type CompleteTransactionHandler struct {
	TransactionService transactionCompleter
}

// NewCompleteTransactionHandler creates a new CompleteTransactionHandler.
func NewCompleteTransactionHandler(svc transactionCompleter) *CompleteTransactionHandler {
	return &CompleteTransactionHandler{TransactionService: svc}
}

// Register registers the complete transaction endpoint with the Huma API.
func (h *CompleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "complete-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/account/transaction/{id}/complete",
		Summary:     "Complete transaction",
		Description: "Forces the transaction's status to Done. Idempotent.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CompleteTransactionHandler) handle(ctx context.Context, input *CompleteTransactionInput) (*CompleteTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	completed, err := h.TransactionService.Complete(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to complete transaction", err)
	}
	if completed == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &CompleteTransactionOutput{Body: FromService(*completed)}, nil
}
