package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the recurrence unit of a scheduled transaction.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// ScheduledTransaction is a template that periodically materialises
// transactions. NextDueDate only moves forward: each execution advances it by
// exactly one frequency unit. An item with an unrecognised frequency keeps its
// due date and stays perpetually due; the sweep will pick it up again on every
// tick. Active=false excludes an item from sweeps; creation always starts
// active and there is no terminal state.
type ScheduledTransaction struct {
	ScheduledTransactionID string          `json:"scheduledTransactionID"` // Primary Key (UUID)
	Description            string          `json:"description"`
	Amount                 decimal.Decimal `json:"amount"` // Positive magnitude
	Frequency              Frequency       `json:"frequency"`
	NextDueDate            time.Time       `json:"nextDueDate"`
	Type                   TransactionType `json:"type"`
	AccountID              string          `json:"accountID"`
	CategoryID             string          `json:"categoryID"`
	CreatedBy              string          `json:"createdBy"`
	Notes                  string          `json:"notes"`
	Active                 bool            `json:"active"`
	AuditFields
}
