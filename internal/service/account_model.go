package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// AccountType represents the direction type of an account.
type AccountType string

const (
	AccountTypeDebit  AccountType = "Debit"
	AccountTypeCredit AccountType = "Credit"
)

// Account represents an account in the service layer. UserID is a weak
// reference; nothing cascades through it.
type Account struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Type   AccountType
}

// Card represents a card issued for an account.
type Card struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Type        string
	Number      int64
	DueDate     string
	Functions   string
	CVC         string
	PaymentDate *time.Time
	Name        string
}

// AccountDetails bundles a user's accounts with the first account's
// transactions and cards, mirroring the account lookup response shape.
type AccountDetails struct {
	Accounts     []Account
	Transactions []Transaction
	Cards        []Card
}

func accountFromStorage(doc *mongoconfig.Account) Account {
	return Account{
		ID:     uuid.FromStringOrNil(doc.ID),
		UserID: uuid.FromStringOrNil(doc.UserID),
		Type:   AccountType(doc.Type),
	}
}

func cardFromStorage(doc *mongoconfig.Card) Card {
	return Card{
		ID:          uuid.FromStringOrNil(doc.ID),
		AccountID:   uuid.FromStringOrNil(doc.AccountID),
		Type:        doc.Type,
		Number:      doc.Number,
		DueDate:     doc.DueDate,
		Functions:   doc.Functions,
		CVC:         doc.CVC,
		PaymentDate: doc.PaymentDate,
		Name:        doc.Name,
	}
}
