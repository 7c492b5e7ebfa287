package service

import "time"

// Normalize enforces the sign convention and default fields on a proposed
// transaction. Debit transactions store non-positive values, Credit
// transactions non-negative ones; a mismatched sign is silently negated, not
// rejected. Zero values pass through unchanged. Status defaults to Pending and
// Date to now. Pure function, no I/O; persistence is the caller's concern.
//
// The type itself is not validated here; an unknown type is a boundary concern
// and passes through without sign correction.
func Normalize(input TransactionInput) Transaction {
	value := input.Value

	shouldReverse := (input.Type == TransactionTypeDebit && value.IsPositive()) ||
		(input.Type == TransactionTypeCredit && value.IsNegative())
	if shouldReverse {
		value = value.Neg()
	}

	status := input.Status
	if status == "" {
		status = StatusPending
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	return Transaction{
		AccountID: input.AccountID,
		Type:      input.Type,
		Value:     value,
		From:      input.From,
		To:        input.To,
		Date:      date,
		Anexo:     input.Anexo,
		URLAnexo:  input.URLAnexo,
		Status:    status,
	}
}
