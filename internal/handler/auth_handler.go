package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"focustrack/internal/mail"
	"focustrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Tokens expire an hour after issue; a fresh request replaces the old token.
const resetTokenTTL = time.Hour

// AuthHandler serves the password reset flow.
type AuthHandler struct {
	userRepo  repository.UserRepositoryInterface
	resetRepo repository.PasswordResetRepositoryInterface
	mailer    mail.Mailer
}

func NewAuthHandler(userRepo repository.UserRepositoryInterface, resetRepo repository.PasswordResetRepositoryInterface, mailer mail.Mailer) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
	}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ForgotPassword issues a reset token and mails it to the account's address.
// The response is the same whether or not the email is registered, so the
// endpoint does not reveal which accounts exist.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email := strings.ToLower(req.Email)

	user, err := h.userRepo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	if user != nil {
		token := uuid.NewString()
		if err := h.resetRepo.Create(c.Request.Context(), user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset token"})
			return
		}
		if err := h.mailer.SendPasswordReset(c.Request.Context(), user.Email, token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset email"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset link sent to your email"})
}

// ResetPassword consumes a reset token and replaces the account's password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID, err := h.resetRepo.Consume(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify reset token"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Hash error"})
		return
	}
	user.HashedPassword = string(hash)

	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
