package services

import (
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	HasUser() (bool, error)
	CreateSingleton(passwordHash string) error
	PasswordHash() (string, bool, error)
}

// AuthService is the single-account password gate: one credential row, set
// once on first run.
type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// RequiresInitialSetup reports whether the setup flow still has to run.
func (service *AuthService) RequiresInitialSetup() (bool, error) {
	exists, err := service.users.HasUser()
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// SetPassword stores the account credential. It only works once: when an
// account already exists the call is rejected and nothing changes.
func (service *AuthService) SetPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	exists, err := service.users.HasUser()
	if err != nil {
		return err
	}
	if exists {
		return ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.CreateSingleton(string(hash))
}

// VerifyPassword reports whether a credential exists and matches. It never
// says which of the two checks failed.
func (service *AuthService) VerifyPassword(password string) (bool, error) {
	hash, found, err := service.users.PasswordHash()
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
