package service

import (
	"github.com/carson-networks/cortex-bank-server/internal/auth"
	"github.com/carson-networks/cortex-bank-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage, token issuer, and
// action processor for composite writes.
func NewService(store *storage.Storage, issuer *auth.Issuer, op actionProcessor) *Service {
	return &Service{
		User:        NewUserService(store, issuer, op),
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
	}
}
