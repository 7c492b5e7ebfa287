package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/auth"
	"github.com/carson-networks/cortex-bank-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// FindAccountInput is the Huma input for looking up the caller's account.
// The user identity comes from the verified token, not from the request.
type FindAccountInput struct{}

// FindAccountResponseBody is the response body for the account lookup.
type FindAccountResponseBody struct {
	Accounts     []Account                 `json:"accounts" doc:"Accounts owned by the authenticated user"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Transactions of the first account"`
	Cards        []Card                    `json:"cards" doc:"Cards of the first account"`
}

// FindAccountOutput is the Huma output for the account lookup.
type FindAccountOutput struct {
	Body FindAccountResponseBody
}

// accountFinder is the interface for looking up a user's account details.
type accountFinder interface {
	FindForUser(ctx context.Context, userID uuid.UUID) (*service.AccountDetails, error)
}

// FindAccountHandler handles GET /v1/account.
type FindAccountHandler struct {
	AccountService accountFinder
}

// NewFindAccountHandler creates a new FindAccountHandler.
func NewFindAccountHandler(svc accountFinder) *FindAccountHandler {
	return &FindAccountHandler{AccountService: svc}
}

// Register registers the find account endpoint with the Huma API.
func (h *FindAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "find-account",
		Method:      http.MethodGet,
		Path:        "/v1/account",
		Summary:     "Find account",
		Description: "Returns the authenticated user's accounts with the first account's transactions and cards.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *FindAccountHandler) handle(ctx context.Context, _ *FindAccountInput) (*FindAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid token")
	}

	userID, err := uuid.FromString(claims.UserID())
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid token", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("findAccountMs")
	}
	details, err := h.AccountService.FindForUser(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to find account", err)
	}
	if details == nil {
		return nil, huma.NewError(http.StatusNotFound, "account not found")
	}

	resp := FindAccountResponseBody{
		Accounts:     make([]Account, len(details.Accounts)),
		Transactions: make([]transaction.Transaction, len(details.Transactions)),
		Cards:        make([]Card, len(details.Cards)),
	}
	for i, account := range details.Accounts {
		resp.Accounts[i] = accountFromService(account)
	}
	for i, tx := range details.Transactions {
		resp.Transactions[i] = transaction.FromService(tx)
	}
	for i, card := range details.Cards {
		resp.Cards[i] = cardFromService(card)
	}

	return &FindAccountOutput{Body: resp}, nil
}
