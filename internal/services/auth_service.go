// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/models"
	"github.com/inventra/inventory-backend/internal/utils"
)

type AuthService struct {
	db          *gorm.DB
	userService *UserService
	cfg         *config.Config
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserView struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Login string      `json:"login"`
	Role  models.Role `json:"role"`
}

type LoginResponse struct {
	UserView
	Token string `json:"token"`
}

func NewAuthService(db *gorm.DB, userService *UserService, cfg *config.Config) *AuthService {
	return &AuthService{
		db:          db,
		userService: userService,
		cfg:         cfg,
	}
}

func NewUserView(user *models.User) UserView {
	return UserView{
		ID:    user.ID,
		Name:  user.Name,
		Login: user.Login,
		Role:  user.Role,
	}
}

// Login checks credentials and issues a bearer token. The caller is
// responsible for binding the returned user to a session.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("login = ?", req.Login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Login, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResponse{UserView: NewUserView(&user), Token: token}, nil
}

// ResolveUser loads the principal for a user id taken from a session.
// Users deleted since the session was opened are not authenticated.
func (s *AuthService) ResolveUser(userID uint) (*Principal, error) {
	user, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return PrincipalFromUser(user), nil
}

// ResolveToken validates a bearer token and loads its principal.
func (s *AuthService) ResolveToken(token string) (*Principal, error) {
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return s.ResolveUser(claims.UserID)
}
