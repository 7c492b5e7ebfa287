package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/storage"
	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Create normalizes and persists a new transaction.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	if input.AccountID == uuid.Nil || input.Type == "" {
		return nil, ErrMissingTransactionFields
	}

	normalized := Normalize(input)

	doc, err := s.storage.Transactions.Insert(ctx, &mongoconfig.TransactionCreate{
		AccountID: normalized.AccountID.String(),
		Type:      string(normalized.Type),
		Value:     normalized.Value.String(),
		From:      normalized.From,
		To:        normalized.To,
		Date:      normalized.Date,
		Anexo:     normalized.Anexo,
		URLAnexo:  normalized.URLAnexo,
		Status:    string(normalized.Status),
	})
	if err != nil {
		return nil, err
	}

	created, err := transactionFromStorage(doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Get retrieves a transaction by ID. Returns nil, nil when absent.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	doc, err := s.storage.Transactions.FindByID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	tx, err := transactionFromStorage(doc)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update applies a whitelist patch to a transaction. Returns nil, nil when
// the id is unknown. Last writer wins; there is no concurrency check.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	update := &mongoconfig.TransactionUpdate{
		From:     patch.From,
		To:       patch.To,
		Anexo:    patch.Anexo,
		URLAnexo: patch.URLAnexo,
	}
	if patch.Value != nil {
		value := patch.Value.String()
		update.Value = &value
	}
	if patch.Type != nil {
		transactionType := string(*patch.Type)
		update.Type = &transactionType
	}
	if patch.Status != nil {
		status := string(*patch.Status)
		update.Status = &status
	}

	doc, err := s.storage.Transactions.UpdateByID(ctx, id.String(), update)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	tx, err := transactionFromStorage(doc)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Delete removes a transaction. Returns false when the id is unknown. Deleting
// a transaction has no cascading effect on its account or cards.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.storage.Transactions.DeleteByID(ctx, id.String())
}

// Complete forces a transaction's status to Done regardless of current state.
// Completing an already-Done transaction is a no-op result-wise. Returns
// nil, nil when the id is unknown.
func (s *TransactionService) Complete(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	status := StatusDone
	return s.Update(ctx, id, TransactionPatch{Status: &status})
}

// List returns transactions, optionally filtered to one account, newest first.
func (s *TransactionService) List(ctx context.Context, accountID *uuid.UUID) ([]Transaction, error) {
	filter := &mongoconfig.TransactionFilter{}
	if accountID != nil {
		id := accountID.String()
		filter.AccountID = &id
	}

	docs, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(docs)
}

// Statement returns the full transaction history for an account.
func (s *TransactionService) Statement(ctx context.Context, accountID uuid.UUID) ([]Transaction, error) {
	return s.List(ctx, &accountID)
}
