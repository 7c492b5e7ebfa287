package mongoconfig

import (
	"context"
	"time"
)

// Card represents a card document linked to an account.
type Card struct {
	ID          string     `bson:"_id"`
	AccountID   string     `bson:"accountId"`
	Type        string     `bson:"type"`
	Number      int64      `bson:"number"`
	DueDate     string     `bson:"dueDate"`
	Functions   string     `bson:"functions"`
	CVC         string     `bson:"cvc"`
	PaymentDate *time.Time `bson:"paymentDate"`
	Name        string     `bson:"name"`
}

// CardCreate is the input for creating a new card.
type CardCreate struct {
	AccountID   string
	Type        string
	Number      int64
	DueDate     string
	Functions   string
	CVC         string
	PaymentDate *time.Time
	Name        string
}

// ICardCollection defines the interface for card storage operations.
type ICardCollection interface {
	Insert(ctx context.Context, create *CardCreate) (*Card, error)
	ListByAccountID(ctx context.Context, accountID string) ([]*Card, error)
}
