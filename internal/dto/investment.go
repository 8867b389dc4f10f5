package dto

import (
	"time"

	"fintracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest is the payload for recording an investment. When
// CurrentValue is omitted it defaults to InitialAmount.
type CreateInvestmentRequest struct {
	Name               string           `json:"name" binding:"required"`
	InvestmentType     string           `json:"investmentType" binding:"required"`
	InitialAmount      decimal.Decimal  `json:"initialAmount" binding:"required,gt=0"`
	CurrentValue       *decimal.Decimal `json:"currentValue,omitempty"`
	StartDate          time.Time        `json:"startDate" binding:"required"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
	ExpectedReturnRate *decimal.Decimal `json:"expectedReturnRate,omitempty"`
	Notes              string           `json:"notes"`
	Ticker             string           `json:"ticker"`
}

// UpdateInvestmentRequest is the payload for updating an investment. Nil
// fields are left unchanged.
type UpdateInvestmentRequest struct {
	Name               *string          `json:"name,omitempty"`
	InvestmentType     *string          `json:"investmentType,omitempty"`
	InitialAmount      *decimal.Decimal `json:"initialAmount,omitempty" binding:"omitempty,gt=0"`
	CurrentValue       *decimal.Decimal `json:"currentValue,omitempty"`
	StartDate          *time.Time       `json:"startDate,omitempty"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
	ExpectedReturnRate *decimal.Decimal `json:"expectedReturnRate,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	Ticker             *string          `json:"ticker,omitempty"`
}

// UpdateInvestmentValueRequest sets a new current value for an investment.
type UpdateInvestmentValueRequest struct {
	CurrentValue decimal.Decimal `json:"currentValue" binding:"required"`
}

// InvestmentResponse is the API representation of an investment.
type InvestmentResponse struct {
	InvestmentID       string           `json:"investmentID"`
	Name               string           `json:"name"`
	InvestmentType     string           `json:"investmentType"`
	InitialAmount      decimal.Decimal  `json:"initialAmount"`
	CurrentValue       *decimal.Decimal `json:"currentValue,omitempty"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            *time.Time       `json:"endDate,omitempty"`
	ExpectedReturnRate *decimal.Decimal `json:"expectedReturnRate,omitempty"`
	UserID             string           `json:"userID"`
	Notes              string           `json:"notes"`
	Ticker             string           `json:"ticker"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ReturnRateResponse carries a computed return rate as a percentage.
type ReturnRateResponse struct {
	InvestmentID string          `json:"investmentID"`
	ReturnRate   decimal.Decimal `json:"returnRate"`
}

// ToInvestmentResponse converts a domain investment to its API representation.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:       inv.InvestmentID,
		Name:               inv.Name,
		InvestmentType:     inv.InvestmentType,
		InitialAmount:      inv.InitialAmount,
		CurrentValue:       inv.CurrentValue,
		StartDate:          inv.StartDate,
		EndDate:            inv.EndDate,
		ExpectedReturnRate: inv.ExpectedReturnRate,
		UserID:             inv.UserID,
		Notes:              inv.Notes,
		Ticker:             inv.Ticker,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

// ToInvestmentResponses converts a slice of domain investments.
func ToInvestmentResponses(investments []domain.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, len(investments))
	for i := range investments {
		out[i] = ToInvestmentResponse(&investments[i])
	}
	return out
}
