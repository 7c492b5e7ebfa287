package mongoconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const cardCollectionName = "cards"

var _ ICardCollection = (*CardsCollection)(nil)

type CardsCollection struct {
	coll *mongo.Collection
}

func NewCardsCollection(db *mongo.Database) CardsCollection {
	return CardsCollection{coll: db.Collection(cardCollectionName)}
}

// Insert creates a new card document and returns it with its generated ID.
func (c *CardsCollection) Insert(ctx context.Context, create *CardCreate) (*Card, error) {
	doc := &Card{
		ID:          uuid.Must(uuid.NewV4()).String(),
		AccountID:   create.AccountID,
		Type:        create.Type,
		Number:      create.Number,
		DueDate:     create.DueDate,
		Functions:   create.Functions,
		CVC:         create.CVC,
		PaymentDate: create.PaymentDate,
		Name:        create.Name,
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListByAccountID returns the cards issued for an account.
func (c *CardsCollection) ListByAccountID(ctx context.Context, accountID string) ([]*Card, error) {
	cursor, err := c.coll.Find(ctx, bson.M{"accountId": accountID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*Card
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
