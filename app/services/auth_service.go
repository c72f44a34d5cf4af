package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/pkg/auth"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
)

// AuthService manages accounts: registration, login, password reset and
// profile changes.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account and returns it with the password hashed.
// A taken email returns ErrConflict.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Name: name, Email: email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}

	logger.Info("auth: registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and returns a signed token. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.User{}, ErrUnauthorized
		}
		return "", models.User{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// ResetPassword replaces the password for the account with the given email.
// Unknown email returns ErrNotFound.
func (s *AuthService) ResetPassword(email, newPassword string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hash
	if err := s.users.Update(&user); err != nil {
		return err
	}

	logger.Info("auth: password reset", "user_id", user.ID)
	return nil
}

// Profile returns the account by ID.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ChangeName updates the display name.
func (s *AuthService) ChangeName(userID uint, name string) (models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return models.User{}, err
	}

	user.Name = name
	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ChangePassword verifies the old password before storing the new one.
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, oldPassword) {
		return FieldError("old_password", "old password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hash
	return s.users.Update(&user)
}

// ChangeImage updates the profile image URL.
func (s *AuthService) ChangeImage(userID uint, imageURL string) (models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return models.User{}, err
	}

	user.ProfileImage = imageURL
	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
