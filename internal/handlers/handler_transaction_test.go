package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/handlers"
	"fintracker/internal/middleware"
	"fintracker/internal/utils"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateFromSchedule(ctx context.Context, st domain.ScheduledTransaction, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, st, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsByAccountID(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransactionService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService)
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	token, _, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "fintracker-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestCreateTransactionSuccess() {
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Description:     "Groceries",
		Amount:          decimal.NewFromInt(50),
		TransactionDate: time.Now().UTC(),
		Type:            domain.Expense,
		AccountID:       uuid.NewString(),
		CategoryID:      uuid.NewString(),
	}
	created := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		Type:            req.Type,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		CreatedBy:       userID,
	}
	suite.mockTransactionService.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(got dto.CreateTransactionRequest) bool {
			return got.Description == req.Description && got.Amount.Equal(req.Amount)
		}),
		userID, // from the bearer token
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.TransactionID, body.TransactionID)
	suite.Equal(userID, body.CreatedBy)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransactionUnauthorized() {
	req := dto.CreateTransactionRequest{
		Description:     "Groceries",
		Amount:          decimal.NewFromInt(50),
		TransactionDate: time.Now().UTC(),
		Type:            domain.Expense,
		AccountID:       uuid.NewString(),
		CategoryID:      uuid.NewString(),
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", "", req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransactionRejectsNegativeAmount() {
	userID := uuid.NewString()
	req := map[string]any{
		"description":     "Groceries",
		"amount":          "-50",
		"transactionDate": time.Now().UTC().Format(time.RFC3339),
		"type":            "EXPENSE",
		"accountID":       uuid.NewString(),
		"categoryID":      uuid.NewString(),
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionNotFound() {
	userID := uuid.NewString()
	txnID := uuid.NewString()
	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsByAccount() {
	userID := uuid.NewString()
	accountID := uuid.NewString()
	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{
			{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(100)},
			{TransactionID: uuid.NewString(), AccountID: accountID, Amount: decimal.NewFromInt(50)},
		},
	}
	suite.mockTransactionService.On("GetTransactionsByAccountID",
		mock.Anything,
		accountID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 10 && p.NextToken == nil
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/transactions/account/%s?limit=10", accountID)
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 2)
	suite.Equal(expected.Transactions[0].TransactionID, body.Transactions[0].TransactionID)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDateRangeRejectsBadDates() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/date-range?start=notadate&end=2025-01-01T00:00:00Z", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "GetTransactionsByDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	userID := uuid.NewString()
	txnID := uuid.NewString()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, txnID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
