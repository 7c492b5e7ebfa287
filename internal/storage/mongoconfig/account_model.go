package mongoconfig

import "context"

// Account represents an account document. UserID is a weak reference to the
// owning user; deleting a user does not cascade here.
type Account struct {
	ID     string `bson:"_id"`
	UserID string `bson:"userId"`
	Type   string `bson:"type"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID string
	Type   string
}

// IAccountCollection defines the interface for account storage operations.
type IAccountCollection interface {
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	ListByUserID(ctx context.Context, userID string) ([]*Account, error)
}
