package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/core/services"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/utils"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockEmailSndr *MockEmailSender
	service       portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockEmailSndr = new(MockEmailSender)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockEmailSndr)
}

func (suite *UserServiceTestSuite) TestGetUserProfileByEmail_NeverExposesPasswordHash() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	profile, err := suite.service.GetUserProfileByEmail(ctx, user.Email)

	suite.Require().NoError(err)
	suite.Equal(user.Email, profile.Email)
	suite.Equal("Ada", profile.FirstName)
}

func (suite *UserServiceTestSuite) TestGetUserProfileByEmail_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserProfileByEmail(ctx, "ghost@example.com")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateUserProfile_PatchesOnlyProvidedFields() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "password123")
	newFirst := "Adeline"

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FirstName == newFirst && u.LastName == "Lovelace"
	})).Return(nil).Once()

	profile, err := suite.service.UpdateUserProfile(ctx, user.Email, dto.ProfileRequest{FirstName: &newFirst})

	suite.Require().NoError(err)
	suite.Equal(newFirst, profile.FirstName)
	suite.Equal("Lovelace", profile.LastName)
}

func (suite *UserServiceTestSuite) TestUpdatePassword_Success() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "oldpassword")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return hash != "newpassword" && utils.CheckPasswordHash("newpassword", hash)
	})).Return(nil).Once()

	err := suite.service.UpdatePassword(ctx, user.Email, dto.UpdatePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdatePassword_WrongCurrentPassword() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "oldpassword")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	err := suite.service.UpdatePassword(ctx, user.Email, dto.UpdatePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "newpassword",
	})

	suite.ErrorIs(err, apperrors.ErrBadCredentials)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateEmail_SendsVerificationWithoutMutating() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil).Once()
	suite.mockEmailSndr.On("SendVerificationEmail", ctx, user.Email, "new@example.com").Return(nil).Once()

	err := suite.service.UpdateEmail(ctx, user.Email, "new@example.com")

	suite.Require().NoError(err)
	// The account itself is untouched until verification completes
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
	suite.mockEmailSndr.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateEmail_AddressTaken() {
	ctx := context.Background()
	user := activeUser("ada@example.com", "password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

	err := suite.service.UpdateEmail(ctx, user.Email, "taken@example.com")

	suite.ErrorIs(err, apperrors.ErrBadRequest)
	suite.mockEmailSndr.AssertNotCalled(suite.T(), "SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetAllUsers() {
	ctx := context.Background()
	users := []domain.User{*activeUser("a@example.com", "x"), *activeUser("b@example.com", "y")}

	suite.mockUserRepo.On("FindUsers", ctx).Return(users, nil).Once()

	profiles, err := suite.service.GetAllUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(profiles, 2)
}

func (suite *UserServiceTestSuite) TestGetEventParticipants_EmptyUntilRegistrationExists() {
	profiles, err := suite.service.GetEventParticipantsForManager(context.Background(), 42, "mgr@example.com")

	suite.Require().NoError(err)
	suite.Empty(profiles)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
