package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cortex-bank-server/internal/storage"
	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

type accountServiceMocks struct {
	users        *mockUserCollection
	accounts     *mockAccountCollection
	transactions *mockTransactionCollection
	cards        *mockCardCollection
}

func newAccountTestService(t *testing.T) (*AccountService, accountServiceMocks) {
	t.Helper()
	mocks := accountServiceMocks{
		users:        &mockUserCollection{},
		accounts:     &mockAccountCollection{},
		transactions: &mockTransactionCollection{},
		cards:        &mockCardCollection{},
	}
	store := &storage.Storage{
		Users:        mocks.users,
		Accounts:     mocks.accounts,
		Transactions: mocks.transactions,
		Cards:        mocks.cards,
	}
	return NewAccountService(store), mocks
}

func liveUserDoc(userID uuid.UUID) *mongoconfig.User {
	return &mongoconfig.User{
		ID:       userID.String(),
		Username: "joana",
		Email:    "joana@example.com",
	}
}

func TestFindForUser_ReturnsFirstAccountDetails(t *testing.T) {
	svc, mocks := newAccountTestService(t)

	userID := uuid.Must(uuid.NewV4())
	firstID := uuid.Must(uuid.NewV4()).String()
	secondID := uuid.Must(uuid.NewV4()).String()

	mocks.users.On("FindByID", mock.Anything, userID.String()).Return(liveUserDoc(userID), nil)

	mocks.accounts.On("ListByUserID", mock.Anything, userID.String()).Return([]*mongoconfig.Account{
		{ID: firstID, UserID: userID.String(), Type: "Debit"},
		{ID: secondID, UserID: userID.String(), Type: "Credit"},
	}, nil)

	mocks.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *mongoconfig.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == firstID
	})).Return([]*mongoconfig.Transaction{
		storageTransaction(firstID, "-25", "Pending"),
	}, nil)

	mocks.cards.On("ListByAccountID", mock.Anything, firstID).Return([]*mongoconfig.Card{
		{ID: uuid.Must(uuid.NewV4()).String(), AccountID: firstID, Type: "GOLD"},
	}, nil)

	details, err := svc.FindForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotNil(t, details)
	assert.Len(t, details.Accounts, 2)
	assert.Len(t, details.Transactions, 1)
	assert.Len(t, details.Cards, 1)
	assert.Equal(t, "GOLD", details.Cards[0].Type)
	mocks.users.AssertExpectations(t)
	mocks.accounts.AssertExpectations(t)
	mocks.transactions.AssertExpectations(t)
	mocks.cards.AssertExpectations(t)
}

func TestFindForUser_UnknownUser(t *testing.T) {
	svc, mocks := newAccountTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mocks.users.On("FindByID", mock.Anything, userID.String()).Return(nil, nil)

	details, err := svc.FindForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Nil(t, details)
	mocks.accounts.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
}

func TestFindForUser_NoAccount(t *testing.T) {
	svc, mocks := newAccountTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mocks.users.On("FindByID", mock.Anything, userID.String()).Return(liveUserDoc(userID), nil)
	mocks.accounts.On("ListByUserID", mock.Anything, userID.String()).Return([]*mongoconfig.Account{}, nil)

	details, err := svc.FindForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Nil(t, details)
	mocks.transactions.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	mocks.cards.AssertNotCalled(t, "ListByAccountID", mock.Anything, mock.Anything)
}

func TestFindForUser_StorageError(t *testing.T) {
	svc, mocks := newAccountTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mocks.users.On("FindByID", mock.Anything, userID.String()).Return(liveUserDoc(userID), nil)
	mocks.accounts.On("ListByUserID", mock.Anything, userID.String()).
		Return(nil, errors.New("connection refused"))

	details, err := svc.FindForUser(context.Background(), userID)

	assert.Error(t, err)
	assert.Nil(t, details)
}
