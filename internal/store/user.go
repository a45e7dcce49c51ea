package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
)

// UserByUsername looks a user up by its unique username.
func (s *Store) UserByUsername(username string) (*model.User, error) {
	var user model.User
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// SeedDefaultUsers creates the default admin and staff accounts when the
// users table is empty.
func (s *Store) SeedDefaultUsers() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		password string
		role     model.Role
	}{
		{"admin", "admin123", model.RoleAdmin},
		{"staff", "staff123", model.RoleStaff},
	}

	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		user := model.User{
			Username:     d.username,
			PasswordHash: string(hash),
			Role:         d.role,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", d.username, err)
		}
	}
	return nil
}
