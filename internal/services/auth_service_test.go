package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/database/databasetest"
	"github.com/inventra/inventory-backend/internal/models"
	"github.com/inventra/inventory-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	userService *UserService
	authService *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = databasetest.New(suite.T())
	suite.userService = NewUserService(suite.db)
	suite.authService = NewAuthService(suite.db, suite.userService, &config.Config{
		JWT: config.JWTConfig{AccessTokenTTL: 1},
	})
}

func (suite *AuthServiceTestSuite) TestLoginIssuesResolvableToken() {
	user, err := suite.userService.CreateUser(&CreateUserRequest{
		Login:    "alice",
		Password: "secret-pass",
		Name:     "Alice",
		Role:     models.RoleAdmin,
	})
	require.NoError(suite.T(), err)

	resp, err := suite.authService.Login(&LoginRequest{Login: "alice", Password: "secret-pass"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, resp.ID)
	assert.Equal(suite.T(), "Alice", resp.Name)
	assert.Equal(suite.T(), models.RoleAdmin, resp.Role)
	assert.NotEmpty(suite.T(), resp.Token)

	principal, err := suite.authService.ResolveToken(resp.Token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), &Principal{UserID: user.ID, Login: "alice", Name: "Alice", Role: models.RoleAdmin}, principal)
}

func (suite *AuthServiceTestSuite) TestLoginRejectsBadCredentials() {
	_, err := suite.userService.CreateUser(&CreateUserRequest{Login: "bob", Password: "secret-pass", Name: "Bob"})
	require.NoError(suite.T(), err)

	_, err = suite.authService.Login(&LoginRequest{Login: "bob", Password: "wrong-pass"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.authService.Login(&LoginRequest{Login: "nobody", Password: "secret-pass"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestResolveDeletedUser() {
	user, err := suite.userService.CreateUser(&CreateUserRequest{Login: "carol", Password: "secret-pass", Name: "Carol"})
	require.NoError(suite.T(), err)

	token, err := utils.GenerateJWT(user.ID, user.Login, string(user.Role), 1)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.db.Delete(&models.User{}, user.ID).Error)

	_, err = suite.authService.ResolveToken(token)
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)

	_, err = suite.authService.ResolveToken("not-a-token")
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestCreateUser() {
	user, err := suite.userService.CreateUser(&CreateUserRequest{Login: "dave", Password: "secret-pass", Name: "Dave"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleUser, user.Role)
	assert.NotEqual(suite.T(), "secret-pass", user.PasswordHash)

	_, err = suite.userService.CreateUser(&CreateUserRequest{Login: "dave", Password: "other-pass", Name: "Dave 2"})
	assert.ErrorIs(suite.T(), err, ErrLoginTaken)

	_, err = suite.userService.CreateUser(&CreateUserRequest{Login: "erin", Password: "secret-pass", Name: "Erin", Role: "ROLE_ROOT"})
	assert.ErrorIs(suite.T(), err, ErrInvalidRole)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
