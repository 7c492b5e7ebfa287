package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "Debit"
	TransactionTypeCredit TransactionType = "Credit"
)

// TransactionStatus is the lifecycle state of a transaction. Pending and Done
// are the known states; values are stored verbatim and not restricted to them.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "Pending"
	StatusDone    TransactionStatus = "Done"
)

// Transaction represents a ledger entry in the service layer. Value is signed:
// non-positive for Debit, non-negative for Credit.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      TransactionType
	Value     decimal.Decimal
	From      string
	To        string
	Date      time.Time
	Anexo     string
	URLAnexo  string
	Status    TransactionStatus
}

// TransactionInput carries caller-supplied fields for creating a transaction,
// before normalization.
type TransactionInput struct {
	AccountID uuid.UUID
	Value     decimal.Decimal
	Type      TransactionType
	From      string
	To        string
	Anexo     string
	URLAnexo  string
	Status    TransactionStatus
	Date      time.Time
}

// TransactionPatch is the whitelist of updatable fields. Nil fields are left
// untouched. Patched values are stored verbatim, without re-normalization.
type TransactionPatch struct {
	Value    *decimal.Decimal
	Type     *TransactionType
	From     *string
	To       *string
	Anexo    *string
	URLAnexo *string
	Status   *TransactionStatus
}

func transactionFromStorage(doc *mongoconfig.Transaction) (Transaction, error) {
	value, err := decimal.NewFromString(doc.Value)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:        uuid.FromStringOrNil(doc.ID),
		AccountID: uuid.FromStringOrNil(doc.AccountID),
		Type:      TransactionType(doc.Type),
		Value:     value,
		From:      doc.From,
		To:        doc.To,
		Date:      doc.Date,
		Anexo:     doc.Anexo,
		URLAnexo:  doc.URLAnexo,
		Status:    TransactionStatus(doc.Status),
	}, nil
}

func transactionsFromStorage(docs []*mongoconfig.Transaction) ([]Transaction, error) {
	converted := make([]Transaction, len(docs))
	for i, doc := range docs {
		tx, err := transactionFromStorage(doc)
		if err != nil {
			return nil, err
		}
		converted[i] = tx
	}
	return converted, nil
}
