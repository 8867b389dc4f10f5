package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/core/services"
	"fintracker/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUserSuccess() {
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Password: "secret-password",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
	}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "jdoe").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jdoe@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.Username == "jdoe" &&
				user.PasswordHash != "" &&
				user.PasswordHash != "secret-password"
		}),
	).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicateUsername() {
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Password: "secret-password",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
	}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "jdoe").
		Return(&domain.User{UserID: "other", Username: "jdoe"}, nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Password: "secret-password",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
	}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "jdoe").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jdoe@example.com").
		Return(&domain.User{UserID: "other", Email: "jdoe@example.com"}, nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *UserServiceTestSuite) TestUpdateUserKeepsOwnUsername() {
	existing := &domain.User{UserID: "user-1", Username: "jdoe", Email: "jdoe@example.com"}
	username := "jdoe"
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").Return(existing, nil).Once()
	// The uniqueness check tolerates the user's own row.
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "jdoe").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.UpdateUser(suite.ctx, "user-1", dto.UpdateUserRequest{Username: &username})

	suite.Require().NoError(err)
	suite.Equal("jdoe", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUserRehashesPassword() {
	existing := &domain.User{UserID: "user-1", Username: "jdoe", PasswordHash: "old-hash"}
	password := "new-password"
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.PasswordHash != "old-hash" && user.PasswordHash != password
		}),
	).Return(nil).Once()

	user, err := suite.service.UpdateUser(suite.ctx, "user-1", dto.UpdateUserRequest{Password: &password})

	suite.Require().NoError(err)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByIDNotFound() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(suite.ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
