package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintracker/internal/core/domain"
	portsrepo "fintracker/internal/core/ports/repositories"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
)

// annualizeThreshold is one month expressed in years (1/12, 4dp). Holdings
// longer than this get an annualised rate, shorter ones the simple rate.
var annualizeThreshold = decimal.NewFromFloat(0.0833)

// investmentService manages investment holdings and computes their returns.
type investmentService struct {
	investmentRepo portsrepo.InvestmentRepository
	userRepo       portsrepo.UserRepository
	now            func() time.Time
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepository, userRepo portsrepo.UserRepository) portssvc.InvestmentSvcFacade {
	return &investmentService{
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, ownerUserID string) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, ownerUserID); err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", ownerUserID, err)
	}

	now := s.now()
	inv := domain.Investment{
		InvestmentID:       uuid.NewString(),
		Name:               req.Name,
		InvestmentType:     req.InvestmentType,
		InitialAmount:      req.InitialAmount,
		CurrentValue:       req.CurrentValue,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ExpectedReturnRate: req.ExpectedReturnRate,
		UserID:             ownerUserID,
		Notes:              req.Notes,
		Ticker:             req.Ticker,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if inv.CurrentValue == nil {
		// a fresh holding is worth what was paid for it
		initial := req.InitialAmount
		inv.CurrentValue = &initial
	}

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		logger.Error("failed to save investment", slog.String("investment_id", inv.InvestmentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}

	logger.Info("investment created", slog.String("investment_id", inv.InvestmentID), slog.String("type", inv.InvestmentType))
	return &inv, nil
}

func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %s: %w", investmentID, err)
	}
	return inv, nil
}

func (s *investmentService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.FindAllInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return invs, nil
}

func (s *investmentService) GetInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.FindInvestmentsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments for user %s: %w", userID, err)
	}
	return invs, nil
}

func (s *investmentService) GetInvestmentsByType(ctx context.Context, investmentType string) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.FindInvestmentsByType(ctx, investmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments of type %s: %w", investmentType, err)
	}
	return invs, nil
}

func (s *investmentService) GetInvestmentsByUserIDAndType(ctx context.Context, userID string, investmentType string) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.FindInvestmentsByUserIDAndType(ctx, userID, investmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments of type %s for user %s: %w", investmentType, userID, err)
	}
	return invs, nil
}

func (s *investmentService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %s for update: %w", investmentID, err)
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.InvestmentType != nil {
		updated.InvestmentType = *req.InvestmentType
	}
	if req.InitialAmount != nil {
		updated.InitialAmount = *req.InitialAmount
	}
	if req.CurrentValue != nil {
		updated.CurrentValue = req.CurrentValue
	}
	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = req.EndDate
	}
	if req.ExpectedReturnRate != nil {
		updated.ExpectedReturnRate = req.ExpectedReturnRate
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Ticker != nil {
		updated.Ticker = *req.Ticker
	}
	updated.UpdatedAt = s.now()

	if err := s.investmentRepo.UpdateInvestment(ctx, updated); err != nil {
		logger.Error("failed to update investment", slog.String("investment_id", investmentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update investment %s: %w", investmentID, err)
	}

	logger.Info("investment updated", slog.String("investment_id", investmentID))
	return &updated, nil
}

// UpdateInvestmentValue records a new market value for the holding. This is
// the only way CurrentValue moves after creation.
func (s *investmentService) UpdateInvestmentValue(ctx context.Context, investmentID string, newValue decimal.Decimal) (*domain.Investment, error) {
	existing, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment %s for value update: %w", investmentID, err)
	}

	updated := *existing
	updated.CurrentValue = &newValue
	updated.UpdatedAt = s.now()

	if err := s.investmentRepo.UpdateInvestment(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update value for investment %s: %w", investmentID, err)
	}
	return &updated, nil
}

func (s *investmentService) DeleteInvestment(ctx context.Context, investmentID string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, investmentID); err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	return nil
}

// CalculateReturnRate computes the holding's return as a percentage rounded
// to two decimals, half away from zero. Holdings older than roughly a month
// get a compound annualised rate, younger ones the simple rate. A holding
// with no current value or a zero initial amount reports zero.
func (s *investmentService) CalculateReturnRate(ctx context.Context, investmentID string) (decimal.Decimal, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get investment %s for return rate: %w", investmentID, err)
	}

	if inv.CurrentValue == nil || inv.InitialAmount.IsZero() {
		return decimal.Zero, nil
	}

	totalReturn := inv.CurrentValue.Sub(inv.InitialAmount)
	simpleRate := totalReturn.DivRound(inv.InitialAmount, 4).Mul(decimal.NewFromInt(100))

	days := int64(s.now().Sub(inv.StartDate).Hours() / 24)
	years := decimal.NewFromInt(days).DivRound(decimal.NewFromInt(365), 4)

	if years.GreaterThan(annualizeThreshold) {
		// (CV/IA)^(1/years) - 1, compounding over the holding period
		ratio, _ := inv.CurrentValue.DivRound(inv.InitialAmount, 8).Float64()
		yearsF, _ := years.Float64()
		annualized := decimal.NewFromFloat(math.Pow(ratio, 1.0/yearsF) - 1).Mul(decimal.NewFromInt(100))
		return annualized.Round(2), nil
	}

	return simpleRate.Round(2), nil
}
