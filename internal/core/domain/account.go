package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType categorises an account (SAVINGS, CHECKING, CREDIT_CARD, CASH, ...).
// Stored as free-form text; the well-known values are listed here.
type AccountType string

const (
	Savings    AccountType = "SAVINGS"
	Checking   AccountType = "CHECKING"
	CreditCard AccountType = "CREDIT_CARD"
	Cash       AccountType = "CASH"
)

// Account represents a balance-bearing container owned by a user.
//
// Balance is a mutable running total: it reflects the sum of signed effects of
// all non-deleted transactions against the account, applied in commit order.
// Only the transaction repository mutates it, always inside a database
// transaction alongside the transaction row change that caused it.
type Account struct {
	AccountID   string          `json:"accountID"`   // Primary Key (UUID)
	Name        string          `json:"name"`        // User-defined name
	AccountType AccountType     `json:"accountType"` // SAVINGS, CHECKING, etc.
	Balance     decimal.Decimal `json:"balance"`     // Persisted running balance
	UserID      string          `json:"userID"`      // FK -> users.user_id (owner)
	AuditFields
}
