package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) FindAllAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	var accounts map[string]domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[string]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, deltas, now)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindRootCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByParentID(ctx context.Context, parentID string) ([]domain.Category, error) {
	args := m.Called(ctx, parentID)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactionFromSchedule(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal, st domain.ScheduledTransaction) error {
	args := m.Called(ctx, txn, deltas, st)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, transactionID, deltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, categoryID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Mock ScheduledTransactionRepository ---

type MockScheduledTransactionRepository struct {
	mock.Mock
}

func (m *MockScheduledTransactionRepository) SaveScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockScheduledTransactionRepository) FindScheduledTransactionByID(ctx context.Context, id string) (*domain.ScheduledTransaction, error) {
	args := m.Called(ctx, id)
	var st *domain.ScheduledTransaction
	if args.Get(0) != nil {
		st = args.Get(0).(*domain.ScheduledTransaction)
	}
	return st, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindAllScheduledTransactions(ctx context.Context) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindScheduledTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx, accountID)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindScheduledTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx, categoryID)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindScheduledTransactionsByUserID(ctx context.Context, userID string) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx, userID)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindDueBefore(ctx context.Context, now time.Time) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx, now)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) FindUpcomingBefore(ctx context.Context, date time.Time) ([]domain.ScheduledTransaction, error) {
	args := m.Called(ctx, date)
	var sts []domain.ScheduledTransaction
	if args.Get(0) != nil {
		sts = args.Get(0).([]domain.ScheduledTransaction)
	}
	return sts, args.Error(1)
}

func (m *MockScheduledTransactionRepository) UpdateScheduledTransaction(ctx context.Context, st domain.ScheduledTransaction) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockScheduledTransactionRepository) UpdateScheduledTransactionInTx(ctx context.Context, tx pgx.Tx, st domain.ScheduledTransaction) error {
	args := m.Called(ctx, tx, st)
	return args.Error(0)
}

func (m *MockScheduledTransactionRepository) DeleteScheduledTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	var inv *domain.Investment
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Investment)
	}
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) FindAllInvestments(ctx context.Context) ([]domain.Investment, error) {
	args := m.Called(ctx)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByType(ctx context.Context, investmentType string) ([]domain.Investment, error) {
	args := m.Called(ctx, investmentType)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByUserIDAndType(ctx context.Context, userID string, investmentType string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID, investmentType)
	var invs []domain.Investment
	if args.Get(0) != nil {
		invs = args.Get(0).([]domain.Investment)
	}
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	args := m.Called(ctx, investmentID)
	return args.Error(0)
}

// --- Mock TransactionSvcFacade ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) CreateFromSchedule(ctx context.Context, st domain.ScheduledTransaction, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, st, now)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByAccountID(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, accountID, params)
	var resp *dto.ListTransactionsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ListTransactionsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByCategoryID(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, categoryID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) GetTransactionsByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
