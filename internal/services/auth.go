package services

import (
	"errors"

	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/utils"
)

// UserStore is the auth service's persistence interface
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

// AuthService verifies login credentials
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns the user. Unknown emails and
// wrong passwords both surface as ErrInvalidCredentials.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns a user by id
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.users.GetByID(id)
}
