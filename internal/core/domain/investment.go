package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment tracks a single holding. CurrentValue is nil until the first
// explicit value update unless it was set at creation (where it defaults to
// InitialAmount); it is never updated automatically.
type Investment struct {
	InvestmentID       string           `json:"investmentID"` // Primary Key (UUID)
	Name               string           `json:"name"`
	InvestmentType     string           `json:"investmentType"` // SIP, MUTUAL_FUND, STOCK, FIXED_DEPOSIT, ...
	InitialAmount      decimal.Decimal  `json:"initialAmount"`
	CurrentValue       *decimal.Decimal `json:"currentValue,omitempty"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
	ExpectedReturnRate *decimal.Decimal `json:"expectedReturnRate,omitempty"`
	UserID             string           `json:"userID"` // FK -> users.user_id (owner)
	Notes              string           `json:"notes"`
	Ticker             string           `json:"ticker"` // For stocks or mutual funds
	AuditFields
}
