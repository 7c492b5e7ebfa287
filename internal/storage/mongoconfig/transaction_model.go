package mongoconfig

import (
	"context"
	"time"
)

// Transaction represents a ledger entry document.
type Transaction struct {
	ID        string    `bson:"_id"`
	AccountID string    `bson:"accountId"`
	Type      string    `bson:"type"`
	Value     string    `bson:"value"`
	From      string    `bson:"from,omitempty"`
	To        string    `bson:"to,omitempty"`
	Date      time.Time `bson:"date"`
	Anexo     string    `bson:"anexo,omitempty"`
	URLAnexo  string    `bson:"urlAnexo,omitempty"`
	Status    string    `bson:"status"`
}

// TransactionCreate is the input for creating a new transaction.
// The caller is expected to have normalized value sign, status, and date.
type TransactionCreate struct {
	AccountID string
	Type      string
	Value     string
	From      string
	To        string
	Date      time.Time
	Anexo     string
	URLAnexo  string
	Status    string
}

// TransactionUpdate is a whitelist patch. Nil fields are left untouched.
type TransactionUpdate struct {
	Type     *string
	Value    *string
	From     *string
	To       *string
	Anexo    *string
	URLAnexo *string
	Status   *string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID *string
}

// ITransactionCollection defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Mongo) without changing callers.
type ITransactionCollection interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	UpdateByID(ctx context.Context, id string, update *TransactionUpdate) (*Transaction, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
