package dto

import (
	"time"

	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating an account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required"`
	Balance     decimal.Decimal    `json:"balance"` // Opening balance, defaults to zero
}

// UpdateAccountRequest is the payload for updating an account. Nil fields are
// left unchanged.
type UpdateAccountRequest struct {
	Name        *string             `json:"name,omitempty"`
	AccountType *domain.AccountType `json:"accountType,omitempty"`
	Balance     *decimal.Decimal    `json:"balance,omitempty"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	UserID      string             `json:"userID"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		AccountType: a.AccountType,
		Balance:     a.Balance,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
