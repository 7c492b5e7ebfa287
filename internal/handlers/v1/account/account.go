package account

import (
	"time"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// Account is the wire representation of an account.
type Account struct {
	ID     string `json:"id" doc:"Account UUID"`
	UserID string `json:"userId" doc:"Owning user UUID"`
	Type   string `json:"type" doc:"Account type"`
}

// Card is the wire representation of a card.
type Card struct {
	ID          string `json:"id" doc:"Card UUID"`
	AccountID   string `json:"accountId" doc:"Account UUID"`
	Type        string `json:"type" doc:"Card tier"`
	Number      int64  `json:"number" doc:"Card number"`
	DueDate     string `json:"dueDate" doc:"Card due date"`
	Functions   string `json:"functions" doc:"Card functions"`
	CVC         string `json:"cvc" doc:"Card verification code"`
	PaymentDate string `json:"paymentDate,omitempty" doc:"Last payment date, RFC3339"`
	Name        string `json:"name" doc:"Name printed on the card"`
}

func accountFromService(account service.Account) Account {
	return Account{
		ID:     account.ID.String(),
		UserID: account.UserID.String(),
		Type:   string(account.Type),
	}
}

func cardFromService(card service.Card) Card {
	wire := Card{
		ID:        card.ID.String(),
		AccountID: card.AccountID.String(),
		Type:      card.Type,
		Number:    card.Number,
		DueDate:   card.DueDate,
		Functions: card.Functions,
		CVC:       card.CVC,
		Name:      card.Name,
	}
	if card.PaymentDate != nil {
		wire.PaymentDate = card.PaymentDate.Format(time.RFC3339)
	}
	return wire
}
