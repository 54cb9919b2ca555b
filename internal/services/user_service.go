// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/models"
)

var errUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Login    string      `json:"login" validate:"required,min=3,max=50"`
	Password string      `json:"password" validate:"required,min=6"`
	Name     string      `json:"name" validate:"required,max=100"`
	Role     models.Role `json:"role"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// CreateUser registers a login. An empty role defaults to ROLE_USER.
func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var existing int64
	if err := s.db.Model(&models.User{}).Where("login = ?", req.Login).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, ErrLoginTaken
	}

	user := &models.User{
		Login:     req.Login,
		Name:      req.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
