package dto

import (
	"time"

	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateScheduledTransactionRequest is the payload for creating a recurring
// transaction template. New templates always start active.
type CreateScheduledTransactionRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	Frequency   domain.Frequency       `json:"frequency" binding:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	NextDueDate time.Time              `json:"nextDueDate" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=EXPENSE INCOME TRANSFER"`
	AccountID   string                 `json:"accountID" binding:"required"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	Notes       string                 `json:"notes"`
}

// UpdateScheduledTransactionRequest is the payload for updating a template.
// Nil fields are left unchanged. Active is the only way to pause an item.
type UpdateScheduledTransactionRequest struct {
	Description *string                 `json:"description,omitempty"`
	Amount      *decimal.Decimal        `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Frequency   *domain.Frequency       `json:"frequency,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	NextDueDate *time.Time              `json:"nextDueDate,omitempty"`
	Type        *domain.TransactionType `json:"type,omitempty" binding:"omitempty,oneof=EXPENSE INCOME TRANSFER"`
	AccountID   *string                 `json:"accountID,omitempty"`
	CategoryID  *string                 `json:"categoryID,omitempty"`
	Notes       *string                 `json:"notes,omitempty"`
	Active      *bool                   `json:"active,omitempty"`
}

// ScheduledTransactionResponse is the API representation of a scheduled
// transaction.
type ScheduledTransactionResponse struct {
	ScheduledTransactionID string                 `json:"scheduledTransactionID"`
	Description            string                 `json:"description"`
	Amount                 decimal.Decimal        `json:"amount"`
	Frequency              domain.Frequency       `json:"frequency"`
	NextDueDate            time.Time              `json:"nextDueDate"`
	Type                   domain.TransactionType `json:"type"`
	AccountID              string                 `json:"accountID"`
	CategoryID             string                 `json:"categoryID"`
	CreatedBy              string                 `json:"createdBy"`
	Notes                  string                 `json:"notes"`
	Active                 bool                   `json:"active"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

// ToScheduledTransactionResponse converts a domain scheduled transaction.
func ToScheduledTransactionResponse(st *domain.ScheduledTransaction) ScheduledTransactionResponse {
	return ScheduledTransactionResponse{
		ScheduledTransactionID: st.ScheduledTransactionID,
		Description:            st.Description,
		Amount:                 st.Amount,
		Frequency:              st.Frequency,
		NextDueDate:            st.NextDueDate,
		Type:                   st.Type,
		AccountID:              st.AccountID,
		CategoryID:             st.CategoryID,
		CreatedBy:              st.CreatedBy,
		Notes:                  st.Notes,
		Active:                 st.Active,
		CreatedAt:              st.CreatedAt,
		UpdatedAt:              st.UpdatedAt,
	}
}

// ToScheduledTransactionResponses converts a slice of domain scheduled
// transactions.
func ToScheduledTransactionResponses(sts []domain.ScheduledTransaction) []ScheduledTransactionResponse {
	out := make([]ScheduledTransactionResponse, len(sts))
	for i := range sts {
		out[i] = ToScheduledTransactionResponse(&sts[i])
	}
	return out
}
