package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/storage"
	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// FindForUser returns the user's accounts together with the first account's
// transactions and cards. Returns nil, nil when the token subject no longer
// resolves to a live user or the user has no account.
func (s *AccountService) FindForUser(ctx context.Context, userID uuid.UUID) (*AccountDetails, error) {
	userDoc, err := s.storage.Users.FindByID(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if userDoc == nil {
		return nil, nil
	}

	accountDocs, err := s.storage.Accounts.ListByUserID(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if len(accountDocs) == 0 {
		return nil, nil
	}

	accounts := make([]Account, len(accountDocs))
	for i, doc := range accountDocs {
		accounts[i] = accountFromStorage(doc)
	}

	firstAccountID := accountDocs[0].ID

	transactionDocs, err := s.storage.Transactions.List(ctx, &mongoconfig.TransactionFilter{
		AccountID: &firstAccountID,
	})
	if err != nil {
		return nil, err
	}
	transactions, err := transactionsFromStorage(transactionDocs)
	if err != nil {
		return nil, err
	}

	cardDocs, err := s.storage.Cards.ListByAccountID(ctx, firstAccountID)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(cardDocs))
	for i, doc := range cardDocs {
		cards[i] = cardFromStorage(doc)
	}

	return &AccountDetails{
		Accounts:     accounts,
		Transactions: transactions,
		Cards:        cards,
	}, nil
}
