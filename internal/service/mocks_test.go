package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// Hand-written mocks for the storage collection interfaces.

type mockTransactionCollection struct {
	mock.Mock
}

func (m *mockTransactionCollection) Insert(ctx context.Context, create *mongoconfig.TransactionCreate) (*mongoconfig.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.Transaction), args.Error(1)
}

func (m *mockTransactionCollection) FindByID(ctx context.Context, id string) (*mongoconfig.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.Transaction), args.Error(1)
}

func (m *mockTransactionCollection) List(ctx context.Context, filter *mongoconfig.TransactionFilter) ([]*mongoconfig.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongoconfig.Transaction), args.Error(1)
}

func (m *mockTransactionCollection) UpdateByID(ctx context.Context, id string, update *mongoconfig.TransactionUpdate) (*mongoconfig.Transaction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.Transaction), args.Error(1)
}

func (m *mockTransactionCollection) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserCollection struct {
	mock.Mock
}

func (m *mockUserCollection) Insert(ctx context.Context, create *mongoconfig.UserCreate) (*mongoconfig.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.User), args.Error(1)
}

func (m *mockUserCollection) FindByID(ctx context.Context, id string) (*mongoconfig.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.User), args.Error(1)
}

func (m *mockUserCollection) FindByEmail(ctx context.Context, email string) (*mongoconfig.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.User), args.Error(1)
}

func (m *mockUserCollection) List(ctx context.Context) ([]*mongoconfig.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongoconfig.User), args.Error(1)
}

type mockAccountCollection struct {
	mock.Mock
}

func (m *mockAccountCollection) Insert(ctx context.Context, create *mongoconfig.AccountCreate) (*mongoconfig.Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.Account), args.Error(1)
}

func (m *mockAccountCollection) ListByUserID(ctx context.Context, userID string) ([]*mongoconfig.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongoconfig.Account), args.Error(1)
}

type mockCardCollection struct {
	mock.Mock
}

func (m *mockCardCollection) Insert(ctx context.Context, create *mongoconfig.CardCreate) (*mongoconfig.Card, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongoconfig.Card), args.Error(1)
}

func (m *mockCardCollection) ListByAccountID(ctx context.Context, accountID string) ([]*mongoconfig.Card, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongoconfig.Card), args.Error(1)
}
