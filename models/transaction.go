package models

import "time"

// Transaction is money received from or paid to a party
type Transaction struct {
	ID        string    `json:"id"`
	MillID    string    `json:"millId"`
	PartyName string    `json:"partyName"`
	Direction string    `json:"direction"`
	Amount    float64   `json:"amount"`
	Mode      string    `json:"mode"`
	Reference string    `json:"reference,omitempty"`
	Note      string    `json:"note,omitempty"`
	TxnDate   time.Time `json:"txnDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTransactionRequest request model
type CreateTransactionRequest struct {
	PartyName string  `json:"partyName" binding:"required"`
	Direction string  `json:"direction" binding:"required,oneof=received paid"`
	Amount    float64 `json:"amount" binding:"gt=0"`
	Mode      string  `json:"mode" binding:"required,oneof=cash bank upi cheque"`
	Reference string  `json:"reference"`
	Note      string  `json:"note"`
	TxnDate   string  `json:"txnDate"`
}

// TransactionFilter narrows a transaction listing. Nil bounds are open.
type TransactionFilter struct {
	MillID    string
	Party     string
	Direction string
	From      *time.Time
	To        *time.Time
}
