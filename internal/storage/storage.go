package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carson-networks/cortex-bank-server/internal/config"
	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

const connectTimeout = 10 * time.Second

type Storage struct {
	Client       *mongo.Client
	Users        mongoconfig.IUserCollection
	Accounts     mongoconfig.IAccountCollection
	Cards        mongoconfig.ICardCollection
	Transactions mongoconfig.ITransactionCollection
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(env.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}

	db := client.Database(env.MongoDatabase)

	users := mongoconfig.NewUsersCollection(db)
	accounts := mongoconfig.NewAccountsCollection(db)
	cards := mongoconfig.NewCardsCollection(db)
	transactions := mongoconfig.NewTransactionsCollection(db)

	return &Storage{
		Client:       client,
		Users:        &users,
		Accounts:     &accounts,
		Cards:        &cards,
		Transactions: &transactions,
	}, nil
}

// Close disconnects the underlying client.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
