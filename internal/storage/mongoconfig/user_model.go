package mongoconfig

import (
	"context"
	"time"
)

// User represents a user document. PasswordHash is a bcrypt hash, never the
// raw password.
type User struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
}

// IUserCollection defines the interface for user storage operations.
type IUserCollection interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
