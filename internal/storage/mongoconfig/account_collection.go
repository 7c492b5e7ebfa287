package mongoconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const accountCollectionName = "accounts"

var _ IAccountCollection = (*AccountsCollection)(nil)

type AccountsCollection struct {
	coll *mongo.Collection
}

func NewAccountsCollection(db *mongo.Database) AccountsCollection {
	return AccountsCollection{coll: db.Collection(accountCollectionName)}
}

// Insert creates a new account document and returns it with its generated ID.
func (c *AccountsCollection) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	doc := &Account{
		ID:     uuid.Must(uuid.NewV4()).String(),
		UserID: create.UserID,
		Type:   create.Type,
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListByUserID returns the accounts owned by a user.
func (c *AccountsCollection) ListByUserID(ctx context.Context, userID string) ([]*Account, error) {
	cursor, err := c.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*Account
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
