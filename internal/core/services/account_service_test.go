package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/core/services"
	"fintracker/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.AccountSvcFacade
	ctx             context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TestCreateAccountWithOpeningBalance() {
	req := dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: domain.Checking,
		Balance:     decimal.NewFromInt(1500),
	}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").
		Return(&domain.User{UserID: "user-1"}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", suite.ctx,
		mock.MatchedBy(func(a domain.Account) bool {
			return a.Name == "Checking" && a.Balance.Equal(decimal.NewFromInt(1500)) && a.UserID == "user-1"
		}),
	).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(1500)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccountUnknownUser() {
	req := dto.CreateAccountRequest{
		Name:        "Checking",
		AccountType: domain.Checking,
	}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req, "missing")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccountManualBalanceCorrection() {
	existing := &domain.Account{
		AccountID: "acc-1",
		Name:      "Checking",
		Balance:   decimal.NewFromInt(1000),
		UserID:    "user-1",
	}
	corrected := decimal.NewFromInt(950)
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", suite.ctx,
		mock.MatchedBy(func(a domain.Account) bool {
			return a.Balance.Equal(corrected)
		}),
	).Return(nil).Once()

	account, err := suite.service.UpdateAccount(suite.ctx, "acc-1", dto.UpdateAccountRequest{Balance: &corrected})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(corrected))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccountWithTransactions() {
	suite.mockAccountRepo.On("DeleteAccount", suite.ctx, "acc-1").
		Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteAccount(suite.ctx, "acc-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrConflict))
}

func (suite *AccountServiceTestSuite) TestGetAccountsByUserID() {
	suite.mockAccountRepo.On("FindAccountsByUserID", suite.ctx, "user-1").
		Return([]domain.Account{{AccountID: "acc-1"}, {AccountID: "acc-2"}}, nil).Once()

	accounts, err := suite.service.GetAccountsByUserID(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(accounts, 2)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
