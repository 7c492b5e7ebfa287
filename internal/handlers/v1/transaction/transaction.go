package transaction

import (
	"time"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// Transaction is the wire representation of a transaction.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	AccountID string `json:"accountId" doc:"Account UUID"`
	Type      string `json:"type" doc:"Debit or Credit"`
	Value     string `json:"value" doc:"Signed decimal value"`
	From      string `json:"from,omitempty" doc:"Counterparty the value came from"`
	To        string `json:"to,omitempty" doc:"Counterparty the value went to"`
	Date      string `json:"date" doc:"RFC3339 transaction date"`
	Anexo     string `json:"anexo,omitempty" doc:"Attachment descriptor"`
	URLAnexo  string `json:"urlAnexo,omitempty" doc:"Attachment URL"`
	Status    string `json:"status" doc:"Lifecycle status, Pending or Done"`
}

// FromService converts a service transaction to its wire representation.
func FromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		AccountID: tx.AccountID.String(),
		Type:      string(tx.Type),
		Value:     tx.Value.String(),
		From:      tx.From,
		To:        tx.To,
		Date:      tx.Date.Format(time.RFC3339),
		Anexo:     tx.Anexo,
		URLAnexo:  tx.URLAnexo,
		Status:    string(tx.Status),
	}
}
