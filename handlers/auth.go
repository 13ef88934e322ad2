package handlers

import (
	"net/http"
	"strings"

	"aptiva/models"
	userSvc "aptiva/services/user"
	"aptiva/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, sign-in and guest sessions.
type AuthHandler struct {
	Users userSvc.UserService
}

func NewAuthHandler(users userSvc.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.Users.Register(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) GuestHandler(c *gin.Context) {
	resp, err := h.Users.GuestSession()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create guest session", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		utils.JSONError(c, http.StatusBadRequest, "No token provided", "")
		return
	}
	if err := h.Users.Logout(token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.Users.GetByID(userID)
	if err != nil || user == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}
	c.JSON(http.StatusOK, user)
}
