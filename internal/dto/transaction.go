package dto

import (
	"time"

	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for booking a transaction.
type CreateTransactionRequest struct {
	Description     string                 `json:"description" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Type            domain.TransactionType `json:"type" binding:"required,oneof=EXPENSE INCOME TRANSFER"`
	AccountID       string                 `json:"accountID" binding:"required"`
	CategoryID      string                 `json:"categoryID" binding:"required"`
	Notes           string                 `json:"notes"`
}

// UpdateTransactionRequest is the payload for updating a transaction. Nil
// fields are left unchanged; AccountID/CategoryID move the transaction when
// they differ from the stored ones.
type UpdateTransactionRequest struct {
	Description     *string                 `json:"description,omitempty"`
	Amount          *decimal.Decimal        `json:"amount,omitempty" binding:"omitempty,gt=0"`
	TransactionDate *time.Time              `json:"transactionDate,omitempty"`
	Type            *domain.TransactionType `json:"type,omitempty" binding:"omitempty,oneof=EXPENSE INCOME TRANSFER"`
	AccountID       *string                 `json:"accountID,omitempty"`
	CategoryID      *string                 `json:"categoryID,omitempty"`
	Notes           *string                 `json:"notes,omitempty"`
}

// ListTransactionsParams carries pagination inputs for account listings.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID          string                 `json:"transactionID"`
	Description            string                 `json:"description"`
	Amount                 decimal.Decimal        `json:"amount"`
	TransactionDate        time.Time              `json:"transactionDate"`
	Type                   domain.TransactionType `json:"type"`
	AccountID              string                 `json:"accountID"`
	CategoryID             string                 `json:"categoryID"`
	CreatedBy              string                 `json:"createdBy"`
	ScheduledTransactionID *string                `json:"scheduledTransactionID,omitempty"`
	Notes                  string                 `json:"notes"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the
// next page, when there is one.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:          t.TransactionID,
		Description:            t.Description,
		Amount:                 t.Amount,
		TransactionDate:        t.TransactionDate,
		Type:                   t.Type,
		AccountID:              t.AccountID,
		CategoryID:             t.CategoryID,
		CreatedBy:              t.CreatedBy,
		ScheduledTransactionID: t.ScheduledTransactionID,
		Notes:                  t.Notes,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
