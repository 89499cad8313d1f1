package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/core/services"
	"github.com/oclock/event_backend/internal/platform/config"
	"github.com/oclock/event_backend/internal/utils"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

type RefreshTokenServiceTestSuite struct {
	suite.Suite
	mockTokenRepo *MockRefreshTokenRepository
	mockUserRepo  *MockUserRepository
	cfg           *config.Config
	service       portssvc.RefreshTokenSvcFacade
}

func (suite *RefreshTokenServiceTestSuite) SetupTest() {
	suite.mockTokenRepo = new(MockRefreshTokenRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "event-backend",
		RefreshTokenExpiryDuration: 168 * time.Hour,
	}
	suite.service = services.NewRefreshTokenService(suite.cfg, suite.mockTokenRepo, suite.mockUserRepo)
}

func (suite *RefreshTokenServiceTestSuite) TestCreateRefreshToken_StoresHashNotToken() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-1", Email: "ada@example.com"}

	var saved domain.RefreshToken
	suite.mockTokenRepo.On("SaveRefreshToken", ctx, mock.MatchedBy(func(t domain.RefreshToken) bool {
		saved = t
		return t.UserID == user.UserID
	})).Return(nil).Once()

	rawToken, err := suite.service.CreateRefreshToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(rawToken)
	suite.NotEqual(rawToken, saved.TokenHash)
	suite.Equal(utils.HashRefreshToken(rawToken), saved.TokenHash)
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), saved.ExpiresAt, time.Minute)
}

func (suite *RefreshTokenServiceTestSuite) TestRefreshAccessToken_EchoesSameRefreshToken() {
	ctx := context.Background()
	rawToken := "opaque-token-value"
	user := &domain.User{UserID: "user-1", Email: "ada@example.com"}
	stored := &domain.RefreshToken{
		TokenHash: utils.HashRefreshToken(rawToken),
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.On("FindByTokenHash", ctx, stored.TokenHash).Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	resp, err := suite.service.RefreshAccessToken(ctx, rawToken)

	suite.Require().NoError(err)
	suite.Equal(rawToken, resp.RefreshToken)

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.Email, claims.Subject)
}

func (suite *RefreshTokenServiceTestSuite) TestRefreshAccessToken_Blank() {
	_, err := suite.service.RefreshAccessToken(context.Background(), "")
	suite.ErrorIs(err, apperrors.ErrEmptyInput)
}

func (suite *RefreshTokenServiceTestSuite) TestRefreshAccessToken_Unknown() {
	ctx := context.Background()
	suite.mockTokenRepo.On("FindByTokenHash", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RefreshAccessToken(ctx, "never-issued")

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "invalid refresh token")
}

func (suite *RefreshTokenServiceTestSuite) TestRefreshAccessToken_Expired() {
	ctx := context.Background()
	rawToken := "stale-token"
	stored := &domain.RefreshToken{
		TokenHash: utils.HashRefreshToken(rawToken),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	suite.mockTokenRepo.On("FindByTokenHash", ctx, stored.TokenHash).Return(stored, nil).Once()

	_, err := suite.service.RefreshAccessToken(ctx, rawToken)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Contains(err.Error(), "expired refresh token")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *RefreshTokenServiceTestSuite) TestRevokeRefreshToken_Success() {
	ctx := context.Background()
	rawToken := "revocable-token"
	hash := utils.HashRefreshToken(rawToken)
	stored := &domain.RefreshToken{TokenHash: hash, UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}

	suite.mockTokenRepo.On("FindByTokenHash", ctx, hash).Return(stored, nil).Once()
	suite.mockTokenRepo.On("DeleteByTokenHash", ctx, hash).Return(nil).Once()

	err := suite.service.RevokeRefreshToken(ctx, rawToken)

	suite.Require().NoError(err)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *RefreshTokenServiceTestSuite) TestRevokeRefreshToken_SecondCallFails() {
	ctx := context.Background()
	suite.mockTokenRepo.On("FindByTokenHash", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RevokeRefreshToken(ctx, "already-revoked")

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.mockTokenRepo.AssertNotCalled(suite.T(), "DeleteByTokenHash", mock.Anything, mock.Anything)
}

func TestRefreshTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RefreshTokenServiceTestSuite))
}
