package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType determines the sign of a transaction's effect on its
// account balance: INCOME adds, EXPENSE subtracts. TRANSFER is a recognised
// value but carries no balance effect.
type TransactionType string

const (
	Expense  TransactionType = "EXPENSE"
	Income   TransactionType = "INCOME"
	Transfer TransactionType = "TRANSFER"
)

// Transaction is a single posted monetary movement affecting exactly one
// account's balance. Amount is always stored positive; the sign is derived
// from Type at apply time.
type Transaction struct {
	TransactionID          string          `json:"transactionID"` // Primary Key (UUID)
	Description            string          `json:"description"`
	Amount                 decimal.Decimal `json:"amount"` // Positive magnitude
	TransactionDate        time.Time       `json:"transactionDate"`
	Type                   TransactionType `json:"type"`
	AccountID              string          `json:"accountID"`  // FK -> accounts.account_id
	CategoryID             string          `json:"categoryID"` // FK -> categories.category_id
	CreatedBy              string          `json:"createdBy"`  // FK -> users.user_id (creator)
	ScheduledTransactionID *string         `json:"scheduledTransactionID,omitempty"` // Set when spawned by the scheduler
	Notes                  string          `json:"notes"`
	AuditFields
}
