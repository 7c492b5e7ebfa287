package mongoconfig

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionCollectionName = "transactions"

var _ ITransactionCollection = (*TransactionsCollection)(nil)

type TransactionsCollection struct {
	coll *mongo.Collection
}

func NewTransactionsCollection(db *mongo.Database) TransactionsCollection {
	return TransactionsCollection{coll: db.Collection(transactionCollectionName)}
}

// Insert creates a new transaction document and returns it with its generated ID.
func (c *TransactionsCollection) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	doc := &Transaction{
		ID:        uuid.Must(uuid.NewV4()).String(),
		AccountID: create.AccountID,
		Type:      create.Type,
		Value:     create.Value,
		From:      create.From,
		To:        create.To,
		Date:      create.Date,
		Anexo:     create.Anexo,
		URLAnexo:  create.URLAnexo,
		Status:    create.Status,
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindByID retrieves a transaction by primary key. Returns nil, nil when absent.
func (c *TransactionsCollection) FindByID(ctx context.Context, id string) (*Transaction, error) {
	var doc Transaction
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns transactions matching the filter, newest first. Nil filter returns all.
func (c *TransactionsCollection) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := bson.M{}
	if filter != nil && filter.AccountID != nil {
		query["accountId"] = *filter.AccountID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := c.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*Transaction
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateByID applies the whitelist patch and returns the updated document.
// Returns nil, nil when no document matches the id.
func (c *TransactionsCollection) UpdateByID(ctx context.Context, id string, update *TransactionUpdate) (*Transaction, error) {
	set := bson.M{}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Value != nil {
		set["value"] = *update.Value
	}
	if update.From != nil {
		set["from"] = *update.From
	}
	if update.To != nil {
		set["to"] = *update.To
	}
	if update.Anexo != nil {
		set["anexo"] = *update.Anexo
	}
	if update.URLAnexo != nil {
		set["urlAnexo"] = *update.URLAnexo
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	if len(set) == 0 {
		return c.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc Transaction
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes a transaction. Returns false when no document matches.
func (c *TransactionsCollection) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
