package db

import (
	"errors"
	"time"

	"stride/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) HasUser() (bool, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).
		Where("id = ?", models.SingletonUserID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateSingleton stores the single permitted account row. The schema's
// CHECK (id = 1) rejects any further rows at the database level too.
func (repo *UserRepository) CreateSingleton(passwordHash string) error {
	user := models.User{
		ID:           models.SingletonUserID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return repo.database.Create(&user).Error
}

// PasswordHash returns the stored credential, reporting false when the setup
// flow has not run yet.
func (repo *UserRepository) PasswordHash() (string, bool, error) {
	var user models.User
	err := repo.database.First(&user, models.SingletonUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return user.PasswordHash, true, nil
}
