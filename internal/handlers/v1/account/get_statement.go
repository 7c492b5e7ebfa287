package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// GetStatementInput is the Huma input for fetching an account statement.
type GetStatementInput struct {
	AccountID string `path:"accountId" format:"uuid" doc:"Account UUID"`
}

// GetStatementResponseBody is the response body for an account statement.
type GetStatementResponseBody struct {
	Transactions []transaction.Transaction `json:"transactions" doc:"Full transaction history, newest first"`
}

// GetStatementOutput is the Huma output for an account statement.
type GetStatementOutput struct {
	Body GetStatementResponseBody
}

// statementReader is the interface for reading an account's statement.
type statementReader interface {
	Statement(ctx context.Context, accountID uuid.UUID) ([]service.Transaction, error)
}

// GetStatementHandler handles GET /v1/account/{accountId}/statement.
type GetStatementHandler struct {
	TransactionService statementReader
}

// NewGetStatementHandler creates a new GetStatementHandler.
func NewGetStatementHandler(svc statementReader) *GetStatementHandler {
	return &GetStatementHandler{TransactionService: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *GetStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statement",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountId}/statement",
		Summary:     "Get statement",
		Description: "Returns the full transaction history for an account.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *GetStatementHandler) handle(ctx context.Context, input *GetStatementInput) (*GetStatementOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}

	transactions, err := h.TransactionService.Statement(ctx, accountID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get statement", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := GetStatementResponseBody{
		Transactions: make([]transaction.Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = transaction.FromService(tx)
	}

	return &GetStatementOutput{Body: resp}, nil
}
