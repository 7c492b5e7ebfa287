package mongoconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const userCollectionName = "users"

var _ IUserCollection = (*UsersCollection)(nil)

type UsersCollection struct {
	coll *mongo.Collection
}

func NewUsersCollection(db *mongo.Database) UsersCollection {
	return UsersCollection{coll: db.Collection(userCollectionName)}
}

// Insert creates a new user document and returns it with its generated ID.
func (c *UsersCollection) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	doc := &User{
		ID:           uuid.Must(uuid.NewV4()).String(),
		Username:     create.Username,
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
		CreatedAt:    time.Now(),
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindByID retrieves a user by primary key. Returns nil, nil when absent.
func (c *UsersCollection) FindByID(ctx context.Context, id string) (*User, error) {
	var doc User
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByEmail retrieves a user by email. Returns nil, nil when absent.
func (c *UsersCollection) FindByEmail(ctx context.Context, email string) (*User, error) {
	var doc User
	err := c.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns all users.
func (c *UsersCollection) List(ctx context.Context) ([]*User, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*User
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
