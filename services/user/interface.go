package user

import "aptiva/models"

// AuthResponse is returned on a successful sign-in or guest session.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService manages accounts and signed-in sessions.
type UserService interface {
	Register(user models.User) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GuestSession() (*AuthResponse, error)
	Logout(token string) error
	GetByID(id string) (*models.User, error)
}
