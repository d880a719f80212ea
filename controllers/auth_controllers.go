package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Sessions *SessionManager
}

func NewAuthController(auth *services.AuthService, sessions *SessionManager) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions}
}

// Login -> check credentials, return JWT
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, ok := ac.Auth.Authenticate(input.Username, input.Password)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	sessionID := utils.NewSessionID()
	token, err := utils.GenerateToken(user.Username, user.Role, sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sess := ac.Sessions.Get(sessionID)
	sess.User = user

	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Username, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": strings.ToLower(user.Role),
	})
}

// Logout -> discard the session cart
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Sessions.Drop(c.GetString("session_id"))
	utils.InfoLogger.Printf("User logged out: %s", c.GetString("username"))
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Profile -> identity carried by the token
func (ac *AuthController) Profile(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Profile", gin.H{
		"username": c.GetString("username"),
		"role":     c.GetString("role"),
	})
}
