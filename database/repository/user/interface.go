package userRepo

import "aptiva/models"

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePreferences(id string, preferences map[string]any) error
}
