package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"resumatch/internal/cache"
	"resumatch/internal/models"
	"resumatch/internal/repository"
	"resumatch/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	DateOfBirth     string `json:"date_of_birth" binding:"required"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Code            string `json:"code" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// AuthConfig carries the tunable policy knobs of the auth workflow.
type AuthConfig struct {
	CodeTTL           time.Duration
	PasswordMinLength int
	HintThreshold     int64
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		CodeTTL:           time.Duration(utils.GetEnvInt("VERIFICATION_CODE_TTL_MINUTES", 10)) * time.Minute,
		PasswordMinLength: utils.GetEnvInt("PASSWORD_MIN_LENGTH", utils.DefaultPasswordMinLength),
		HintThreshold:     utils.GetEnvInt64("LOGIN_ATTEMPT_HINT_THRESHOLD", 3),
	}
}

type AuthController struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	resetRepo        repository.ResetPasswordRepository
	activityRepo     repository.ActivityRepository
	attempts         cache.AttemptStore
	mailer           utils.Mailer
	config           AuthConfig
}

func NewAuthController(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	resetRepo repository.ResetPasswordRepository,
	activityRepo repository.ActivityRepository,
	attempts cache.AttemptStore,
	mailer utils.Mailer,
	config AuthConfig,
) *AuthController {
	return &AuthController{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		resetRepo:        resetRepo,
		activityRepo:     activityRepo,
		attempts:         attempts,
		mailer:           mailer,
		config:           config,
	}
}

// Register godoc
// @Summary Request account registration
// @Description Stores a pending verification and emails a 6-digit code; no User exists until the code is confirmed
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration details"
// @Success 200 {object} map[string]interface{} "Verification code sent"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Account or pending registration already exists"
// @Failure 500 {object} map[string]interface{} "Storage or mail dispatch failure"
// @Router /register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Passwords do not match",
			"error":   "Password and confirmation must be identical",
		})
		return
	}

	if err := utils.ValidatePassword(req.Password, ac.config.PasswordMinLength); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password does not meet the policy",
			"error":   err.Error(),
		})
		return
	}

	exists, err := ac.userRepo.EmailExists(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check existing accounts",
			"error":   "Database error",
		})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "An account with this email already exists",
			"error":   "Email is already registered",
		})
		return
	}

	pending, err := ac.verificationRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check pending verifications",
			"error":   "Database error",
		})
		return
	}
	if err == nil && !pending.Expired(time.Now()) {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "A verification is already pending for this email",
			"error":   "Use resend-code to get a fresh code",
		})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to process password",
			"error":   "Hashing error",
		})
		return
	}

	code := utils.GenerateVerificationCode()
	verification := &models.Verification{
		Email:       req.Email,
		Code:        code,
		FullName:    req.FullName,
		Password:    passwordHash,
		DateOfBirth: req.DateOfBirth,
		ExpiresAt:   time.Now().Add(ac.config.CodeTTL),
	}

	if err := ac.verificationRepo.Upsert(verification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create verification code",
			"error":   "Database error",
		})
		return
	}

	// The user cannot proceed without the code, so a dispatch failure fails
	// the whole request. The pending row is removed so a retry starts clean.
	if err := ac.mailer.Send(req.Email, "Verification Code", "Your verification code is: "+code); err != nil {
		log.Printf("Failed to send verification email to %s: %v", req.Email, err)
		ac.verificationRepo.DeleteByEmail(req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send verification email",
			"error":   "Mail dispatch failure",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Verification code sent successfully",
		"data":    nil,
	})
}

// VerifyCode godoc
// @Summary Confirm a registration code
// @Description Creates the User account when the emailed code matches; the code is single-use
// @Tags auth
// @Accept json
// @Produce json
// @Param verification body VerifyRequest true "Verification details"
// @Success 200 {object} map[string]interface{} "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Expired or incorrect code"
// @Failure 404 {object} map[string]interface{} "No pending verification"
// @Failure 500 {object} map[string]interface{} "Failed to create account"
// @Router /verify [post]
func (ac *AuthController) VerifyCode(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	verification, err := ac.verificationRepo.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No pending verification for this email",
			"error":   "Request registration first",
		})
		return
	}

	if verification.Expired(time.Now()) {
		ac.verificationRepo.DeleteByEmail(req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Verification code has expired",
			"error":   "Request a new code",
		})
		return
	}

	if verification.Code != req.Code {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Incorrect verification code",
			"error":   "Code does not match",
		})
		return
	}

	user, err := ac.userRepo.CreateFromVerification(verification)
	if err != nil {
		// A concurrent verify for the same email consumed the pending row
		// first; exactly one User exists either way.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No pending verification for this email",
				"error":   "Code already used",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   "Database error",
		})
		return
	}

	ac.recordActivity(user.Email, models.ActivityVerified, "")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Verification successful",
		"data":    gin.H{"user_id": user.ID},
	})
}

// ResendCode godoc
// @Summary Resend the registration code
// @Description Overwrites the pending code and expiry in place, invalidating the previous code
// @Tags auth
// @Accept json
// @Produce json
// @Param email body EmailRequest true "User email"
// @Success 200 {object} map[string]interface{} "Verification code resent"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "No pending verification"
// @Failure 500 {object} map[string]interface{} "Storage or mail dispatch failure"
// @Router /resend-code [post]
func (ac *AuthController) ResendCode(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.verificationRepo.FindByEmail(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No pending verification for this email",
			"error":   "Request registration first",
		})
		return
	}

	code := utils.GenerateVerificationCode()
	if err := ac.verificationRepo.UpdateCode(req.Email, code, time.Now().Add(ac.config.CodeTTL)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to refresh verification code",
			"error":   "Database error",
		})
		return
	}

	if err := ac.mailer.Send(req.Email, "Verification Code", "Your verification code is: "+code); err != nil {
		log.Printf("Failed to send verification email to %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send verification email",
			"error":   "Mail dispatch failure",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Verification code resent successfully",
		"data":    nil,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Description Issues a session token; after repeated failures the error suggests the forgot-password flow
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Session token"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Token issuance failure"
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.GetUserByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		ac.rejectLogin(c, req.Email)
		return
	}

	if err := ac.attempts.Reset(c.Request.Context(), req.Email); err != nil {
		log.Printf("Failed to reset login attempts for %s: %v", req.Email, err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	ac.recordActivity(user.Email, models.ActivityLoggedIn, "")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":        user.ID,
				"email":     user.Email,
				"full_name": user.FullName,
			},
		},
	})
}

// rejectLogin answers an unknown email and a wrong password identically and
// bumps the per-email failure counter.
func (ac *AuthController) rejectLogin(c *gin.Context, email string) {
	count, err := ac.attempts.Increment(c.Request.Context(), email)
	if err != nil {
		log.Printf("Failed to count login attempt for %s: %v", email, err)
	}

	response := gin.H{
		"status":  "error",
		"message": "Invalid email or password",
		"error":   "Credentials do not match",
	}
	if count >= ac.config.HintThreshold {
		response["forgot_password_hint"] = true
	}
	c.JSON(http.StatusUnauthorized, response)
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param email body EmailRequest true "User email"
// @Success 200 {object} map[string]interface{} "Reset code sent"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Storage or mail dispatch failure"
// @Router /forgot-password [post]
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.userRepo.GetUserByEmail(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No account associated with this email",
		})
		return
	}

	code := utils.GenerateVerificationCode()
	resetPassword := &models.ResetPassword{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(ac.config.CodeTTL),
	}

	if err := ac.resetRepo.Upsert(resetPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create reset code",
			"error":   "Database error",
		})
		return
	}

	if err := ac.mailer.Send(req.Email, "Password Reset Code", "Your password reset code is: "+code); err != nil {
		log.Printf("Failed to send reset email to %s: %v", req.Email, err)
		ac.resetRepo.DeleteByEmail(req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send reset email",
			"error":   "Mail dispatch failure",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset code sent successfully",
		"data":    nil,
	})
}

// ResetPassword godoc
// @Summary Reset the password with an emailed code
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "Reset details"
// @Success 200 {object} map[string]interface{} "Password updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data or weak password"
// @Failure 401 {object} map[string]interface{} "Invalid or expired reset code"
// @Failure 500 {object} map[string]interface{} "Failed to update password"
// @Router /reset-password [post]
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Passwords do not match",
			"error":   "Password and confirmation must be identical",
		})
		return
	}

	if err := utils.ValidatePassword(req.NewPassword, ac.config.PasswordMinLength); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Password does not meet the policy",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.resetRepo.FindByEmailAndCode(req.Email, req.Code); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired reset code",
			"error":   "Code is incorrect or has expired",
		})
		return
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to process password",
			"error":   "Hashing error",
		})
		return
	}

	if err := ac.userRepo.UpdatePassword(req.Email, passwordHash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update password",
			"error":   "Database error",
		})
		return
	}

	ac.resetRepo.DeleteByEmail(req.Email)
	ac.recordActivity(req.Email, models.ActivityPasswordReset, "")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully",
		"data":    nil,
	})
}

func (ac *AuthController) recordActivity(email, action, detail string) {
	activity := &models.Activity{UserEmail: email, Action: action, Detail: detail}
	if err := ac.activityRepo.Create(activity); err != nil {
		log.Printf("Failed to record %s activity for %s: %v", action, email, err)
	}
}
