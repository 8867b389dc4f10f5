package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/core/services"
	"fintracker/internal/dto"
	"fintracker/internal/utils"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserSvc *MockUserService
	service     portssvc.AuthSvcFacade
	ctx         context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewAuthService(suite.mockUserSvc, "test-secret", time.Hour, "fintracker-test")
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "jdoe", PasswordHash: hash}
	suite.mockUserSvc.On("GetUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "jdoe", Password: "correct-password"})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("user-1", resp.UserID)
	suite.Equal("jdoe", resp.Username)
	suite.True(resp.ExpiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("user-1", claims.Subject)
	suite.Equal("fintracker-test", claims.Issuer)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "jdoe", PasswordHash: hash}
	suite.mockUserSvc.On("GetUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "jdoe", Password: "wrong-password"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	suite.mockUserSvc.On("GetUserByUsername", suite.ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(resp)
	// Indistinguishable from a wrong password.
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Contains(err.Error(), services.ErrInvalidCredentials.Error())
}

func (suite *AuthServiceTestSuite) TestRegisterDelegates() {
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Password: "secret-password",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
	}
	created := &domain.User{UserID: "user-1", Username: "jdoe"}
	suite.mockUserSvc.On("CreateUser", suite.ctx, req).Return(created, nil).Once()

	user, err := suite.service.Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
