package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID string `json:"accountId" required:"true" format:"uuid" doc:"Account UUID"`
	Value     string `json:"value" required:"true" doc:"Signed decimal value; sign is corrected to match type"`
	Type      string `json:"type" required:"true" enum:"Debit,Credit" doc:"Transaction type"`
	From      string `json:"from,omitempty" doc:"Counterparty the value came from"`
	To        string `json:"to,omitempty" doc:"Counterparty the value went to"`
	Anexo     string `json:"anexo,omitempty" doc:"Attachment descriptor"`
	URLAnexo  string `json:"urlAnexo,omitempty" doc:"Attachment URL"`
	Status    string `json:"status,omitempty" doc:"Initial status, defaults to Pending"`
	Date      string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/account/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/account/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction. Value sign is normalized to match the type and status defaults to Pending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionInput, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}

	value, err := decimal.NewFromString(input.Body.Value)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid value", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionInput{
		AccountID: accountID,
		Value:     value,
		Type:      service.TransactionType(input.Body.Type),
		From:      input.Body.From,
		To:        input.Body.To,
		Anexo:     input.Body.Anexo,
		URLAnexo:  input.Body.URLAnexo,
		Status:    service.TransactionStatus(input.Body.Status),
		Date:      date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	serviceInput, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.Create(ctx, serviceInput)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrMissingTransactionFields) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   FromService(*created),
	}, nil
}
