package actions

import (
	"context"

	"github.com/carson-networks/cortex-bank-server/internal/storage"
	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// RegisterUser materializes a user, their first account, and its starter card
// as one logical operation. The three inserts are sequential and independent:
// a failure partway leaves the earlier documents in place with no rollback.
type RegisterUser struct {
	Username     string
	Email        string
	PasswordHash string

	AccountType string

	CardType      string
	CardNumber    int64
	CardDueDate   string
	CardFunctions string
	CardCVC       string

	CreatedUser    *mongoconfig.User
	CreatedAccount *mongoconfig.Account
	CreatedCard    *mongoconfig.Card

	IAction
}

func (a *RegisterUser) Perform(ctx context.Context, store *storage.Storage) error {
	user, err := store.Users.Insert(ctx, &mongoconfig.UserCreate{
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return err
	}
	a.CreatedUser = user

	account, err := store.Accounts.Insert(ctx, &mongoconfig.AccountCreate{
		UserID: user.ID,
		Type:   a.AccountType,
	})
	if err != nil {
		return err
	}
	a.CreatedAccount = account

	card, err := store.Cards.Insert(ctx, &mongoconfig.CardCreate{
		AccountID: account.ID,
		Type:      a.CardType,
		Number:    a.CardNumber,
		DueDate:   a.CardDueDate,
		Functions: a.CardFunctions,
		CVC:       a.CardCVC,
		Name:      user.Username,
	})
	if err != nil {
		return err
	}
	a.CreatedCard = card

	return nil
}
