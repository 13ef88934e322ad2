package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "aptiva/database/repository/user"
	"aptiva/models"
	"aptiva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionDuration = 24 * time.Hour

// DefaultUserService implements UserService over Mongo, with signed-in
// sessions cached in Redis keyed by token hash.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(input models.User) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with that email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashed),
		AuthProvider: "password",
		Preferences:  input.Preferences,
	}
	if user.Username == "" {
		user.Username = strings.SplitN(email, "@", 2)[0]
	}
	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.openSession(user)
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.openSession(*userRec)
}

// GuestSession creates a throwaway account so the assistant can be tried
// without registering.
func (s *DefaultUserService) GuestSession() (*AuthResponse, error) {
	id := uuid.New().String()
	user := models.User{
		ID:           id,
		Email:        fmt.Sprintf("guest-%s@aptiva.local", id[:8]),
		Username:     "guest",
		AuthProvider: "guest",
	}
	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create guest account: %w", err)
	}
	return s.openSession(user)
}

func (s *DefaultUserService) Logout(token string) error {
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) openSession(user models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := utils.AuthSession{
		UserID:       user.ID,
		Email:        user.Email,
		Username:     user.Username,
		AuthProvider: user.AuthProvider,
		CreatedAt:    time.Now(),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), utils.HashToken(token), session); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	user.Password = ""
	return &AuthResponse{User: user, Token: token}, nil
}
