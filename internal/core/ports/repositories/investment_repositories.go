package repositories

import (
	"context"

	"fintracker/internal/core/domain"
)

// InvestmentRepository defines persistence operations for investments.
type InvestmentRepository interface {
	SaveInvestment(ctx context.Context, investment domain.Investment) error
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	FindAllInvestments(ctx context.Context) ([]domain.Investment, error)
	FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error)
	FindInvestmentsByType(ctx context.Context, investmentType string) ([]domain.Investment, error)
	FindInvestmentsByUserIDAndType(ctx context.Context, userID string, investmentType string) ([]domain.Investment, error)
	UpdateInvestment(ctx context.Context, investment domain.Investment) error
	DeleteInvestment(ctx context.Context, investmentID string) error
}
