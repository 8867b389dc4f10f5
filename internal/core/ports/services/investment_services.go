package services

import (
	"context"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"

	"github.com/shopspring/decimal"
)

// InvestmentSvcFacade is the investment service surface consumed by handlers.
type InvestmentSvcFacade interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, ownerUserID string) (*domain.Investment, error)
	GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	GetInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error)
	GetInvestmentsByType(ctx context.Context, investmentType string) ([]domain.Investment, error)
	GetInvestmentsByUserIDAndType(ctx context.Context, userID string, investmentType string) ([]domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestmentValue(ctx context.Context, investmentID string, newValue decimal.Decimal) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID string) error
	// CalculateReturnRate returns the investment's return as a percentage
	// rounded to two decimals, annualised for holdings longer than a month.
	CalculateReturnRate(ctx context.Context, investmentID string) (decimal.Decimal, error)
}
