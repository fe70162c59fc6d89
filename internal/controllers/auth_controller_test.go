package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"resumatch/internal/cache"
	"resumatch/internal/controllers"
	"resumatch/internal/mocks"
	"resumatch/internal/models"
	"resumatch/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

type authMocks struct {
	userRepo         *mocks.MockUserRepository
	verificationRepo *mocks.MockVerificationRepository
	resetRepo        *mocks.MockResetPasswordRepository
	activityRepo     *mocks.MockActivityRepository
	mailer           *mocks.MockMailer
	attempts         cache.AttemptStore
}

func setupAuthControllerWithMocks() (*controllers.AuthController, *authMocks) {
	m := &authMocks{
		userRepo:         new(mocks.MockUserRepository),
		verificationRepo: new(mocks.MockVerificationRepository),
		resetRepo:        new(mocks.MockResetPasswordRepository),
		activityRepo:     new(mocks.MockActivityRepository),
		mailer:           new(mocks.MockMailer),
		attempts:         cache.NewMemoryAttemptStore(),
	}
	config := controllers.AuthConfig{
		CodeTTL:           10 * time.Minute,
		PasswordMinLength: 8,
		HintThreshold:     3,
	}
	controller := controllers.NewAuthController(
		m.userRepo, m.verificationRepo, m.resetRepo, m.activityRepo, m.attempts, m.mailer, config)
	return controller, m
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return hash
}

func postJSON(router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	validBody := func() map[string]interface{} {
		return map[string]interface{}{
			"full_name":        "Jane Doe",
			"email":            "jane@example.com",
			"password":         "Abcd1234",
			"confirm_password": "Abcd1234",
			"date_of_birth":    "01-01-2000",
		}
	}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*authMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful registration",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.userRepo.On("EmailExists", "jane@example.com").Return(false, nil)
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.verificationRepo.On("Upsert", mock.AnythingOfType("*models.Verification")).Return(nil)
				m.mailer.On("Send", "jane@example.com", "Verification Code", mock.AnythingOfType("string")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Verification code sent successfully",
		},
		{
			name: "mismatched passwords create no pending record",
			requestBody: func() map[string]interface{} {
				body := validBody()
				body["confirm_password"] = "Different1"
				return body
			}(),
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Passwords do not match",
		},
		{
			name: "weak password rejected",
			requestBody: func() map[string]interface{} {
				body := validBody()
				body["password"] = "abcd1234"
				body["confirm_password"] = "abcd1234"
				return body
			}(),
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password does not meet the policy",
		},
		{
			name:        "existing account conflicts",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.userRepo.On("EmailExists", "jane@example.com").Return(true, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "An account with this email already exists",
		},
		{
			name:        "pending verification conflicts",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.userRepo.On("EmailExists", "jane@example.com").Return(false, nil)
				pending := &models.Verification{
					Email:     "jane@example.com",
					Code:      "123456",
					ExpiresAt: time.Now().Add(5 * time.Minute),
				}
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(pending, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "A verification is already pending",
		},
		{
			name:        "pending lookup failure is a server error",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.userRepo.On("EmailExists", "jane@example.com").Return(false, nil)
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to check pending verifications",
		},
		{
			name:        "mail dispatch failure fails the request",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.userRepo.On("EmailExists", "jane@example.com").Return(false, nil)
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.verificationRepo.On("Upsert", mock.AnythingOfType("*models.Verification")).Return(nil)
				m.mailer.On("Send", "jane@example.com", "Verification Code", mock.AnythingOfType("string")).Return(errors.New("smtp down"))
				m.verificationRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to send verification email",
		},
		{
			name:           "missing fields rejected",
			requestBody:    map[string]interface{}{"email": "jane@example.com"},
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupAuthControllerWithMocks()
			tt.setupMocks(m)

			router := setupAuthTestRouter()
			router.POST("/register", controller.Register)

			w := postJSON(router, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			m.verificationRepo.AssertExpectations(t)
			m.userRepo.AssertExpectations(t)
			m.mailer.AssertExpectations(t)
		})
	}
}

func TestRegisterStoresCodeBeforeSending(t *testing.T) {
	controller, m := setupAuthControllerWithMocks()

	var storedCode string
	m.userRepo.On("EmailExists", "jane@example.com").Return(false, nil)
	m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	m.verificationRepo.On("Upsert", mock.AnythingOfType("*models.Verification")).
		Run(func(args mock.Arguments) {
			storedCode = args.Get(0).(*models.Verification).Code
		}).Return(nil)
	m.mailer.On("Send", "jane@example.com", "Verification Code", mock.AnythingOfType("string")).Return(nil)

	router := setupAuthTestRouter()
	router.POST("/register", controller.Register)

	w := postJSON(router, "/register", map[string]interface{}{
		"full_name":        "Jane Doe",
		"email":            "jane@example.com",
		"password":         "Abcd1234",
		"confirm_password": "Abcd1234",
		"date_of_birth":    "01-01-2000",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, storedCode, 6)

	sentBody := m.mailer.Calls[0].Arguments.String(2)
	assert.Contains(t, sentBody, storedCode)
}

func TestVerifyCode(t *testing.T) {
	pending := func(code string, expiry time.Time) *models.Verification {
		return &models.Verification{
			Email:       "jane@example.com",
			Code:        code,
			FullName:    "Jane Doe",
			Password:    "hashed",
			DateOfBirth: "01-01-2000",
			ExpiresAt:   expiry,
		}
	}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*authMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful verification creates the user",
			requestBody: map[string]interface{}{"email": "jane@example.com", "code": "123456"},
			setupMocks: func(m *authMocks) {
				verification := pending("123456", time.Now().Add(5*time.Minute))
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
				user := &models.User{ID: 1, Email: "jane@example.com"}
				m.userRepo.On("CreateFromVerification", verification).Return(user, nil)
				m.activityRepo.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Verification successful",
		},
		{
			name:        "no pending verification",
			requestBody: map[string]interface{}{"email": "jane@example.com", "code": "123456"},
			setupMocks: func(m *authMocks) {
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No pending verification",
		},
		{
			name:        "expired code is rejected and cleaned up",
			requestBody: map[string]interface{}{"email": "jane@example.com", "code": "123456"},
			setupMocks: func(m *authMocks) {
				verification := pending("123456", time.Now().Add(-time.Minute))
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
				m.verificationRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Verification code has expired",
		},
		{
			name:        "wrong code is rejected",
			requestBody: map[string]interface{}{"email": "jane@example.com", "code": "654321"},
			setupMocks: func(m *authMocks) {
				verification := pending("123456", time.Now().Add(5*time.Minute))
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Incorrect verification code",
		},
		{
			name:        "replayed code after concurrent consume",
			requestBody: map[string]interface{}{"email": "jane@example.com", "code": "123456"},
			setupMocks: func(m *authMocks) {
				verification := pending("123456", time.Now().Add(5*time.Minute))
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
				m.userRepo.On("CreateFromVerification", verification).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No pending verification",
		},
		{
			name:           "missing code field",
			requestBody:    map[string]interface{}{"email": "jane@example.com"},
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupAuthControllerWithMocks()
			tt.setupMocks(m)

			router := setupAuthTestRouter()
			router.POST("/verify", controller.VerifyCode)

			w := postJSON(router, "/verify", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			m.verificationRepo.AssertExpectations(t)
			m.userRepo.AssertExpectations(t)
		})
	}
}

func TestResendCode(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*authMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful resend overwrites the code in place",
			requestBody: map[string]interface{}{"email": "jane@example.com"},
			setupMocks: func(m *authMocks) {
				verification := &models.Verification{
					Email:     "jane@example.com",
					Code:      "111111",
					ExpiresAt: time.Now().Add(time.Minute),
				}
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
				m.verificationRepo.On("UpdateCode", "jane@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
				m.mailer.On("Send", "jane@example.com", "Verification Code", mock.AnythingOfType("string")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Verification code resent successfully",
		},
		{
			name:        "no pending verification to resend",
			requestBody: map[string]interface{}{"email": "jane@example.com"},
			setupMocks: func(m *authMocks) {
				m.verificationRepo.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No pending verification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupAuthControllerWithMocks()
			tt.setupMocks(m)

			router := setupAuthTestRouter()
			router.POST("/resend-code", controller.ResendCode)

			w := postJSON(router, "/resend-code", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			m.verificationRepo.AssertExpectations(t)
			m.mailer.AssertExpectations(t)
		})
	}
}

func TestResendReplacesOldCode(t *testing.T) {
	controller, m := setupAuthControllerWithMocks()

	verification := &models.Verification{
		Email:     "jane@example.com",
		Code:      "111111",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	var newCode string
	m.verificationRepo.On("FindByEmail", "jane@example.com").Return(verification, nil)
	m.verificationRepo.On("UpdateCode", "jane@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			newCode = args.String(1)
		}).Return(nil)
	m.mailer.On("Send", "jane@example.com", "Verification Code", mock.AnythingOfType("string")).Return(nil)

	router := setupAuthTestRouter()
	router.POST("/resend-code", controller.ResendCode)

	w := postJSON(router, "/resend-code", map[string]interface{}{"email": "jane@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, newCode, 6)
	// The stored code is always rewritten, so the old one is dead even in the
	// rare event the generator repeats it.
	m.verificationRepo.AssertCalled(t, "UpdateCode", "jane@example.com", newCode, mock.AnythingOfType("time.Time"))
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	controller, m := setupAuthControllerWithMocks()

	passwordHash := mustHash(t, "Abcd1234")
	user := &models.User{ID: 1, Email: "jane@example.com", FullName: "Jane Doe", Password: passwordHash}
	m.userRepo.On("GetUserByEmail", "jane@example.com").Return(user, nil)
	m.userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	m.activityRepo.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)

	router := setupAuthTestRouter()
	router.POST("/login", controller.Login)

	login := func(email, password string) (*httptest.ResponseRecorder, map[string]interface{}) {
		w := postJSON(router, "/login", map[string]interface{}{"email": email, "password": password})
		var response map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		return w, response
	}

	// Unknown user and wrong password both come back as 401.
	w, response := login("nobody@example.com", "Abcd1234")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, response["message"], "Invalid email or password")
	assert.Nil(t, response["forgot_password_hint"])

	// Two failures: still no hint.
	w, response = login("jane@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, response["forgot_password_hint"])

	w, response = login("jane@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, response["forgot_password_hint"])

	// Third consecutive failure surfaces the forgot-password hint.
	w, response = login("jane@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, true, response["forgot_password_hint"])

	// Success issues a token and resets the counter.
	w, response = login("jane@example.com", "Abcd1234")
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Counter starts over after the successful login.
	w, response = login("jane@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, response["forgot_password_hint"])
}

func TestForgotPassword(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*authMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful reset code dispatch",
			requestBody: map[string]interface{}{"email": "jane@example.com"},
			setupMocks: func(m *authMocks) {
				user := &models.User{ID: 1, Email: "jane@example.com"}
				m.userRepo.On("GetUserByEmail", "jane@example.com").Return(user, nil)
				m.resetRepo.On("Upsert", mock.AnythingOfType("*models.ResetPassword")).Return(nil)
				m.mailer.On("Send", "jane@example.com", "Password Reset Code", mock.AnythingOfType("string")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Password reset code sent successfully",
		},
		{
			name:        "unknown user",
			requestBody: map[string]interface{}{"email": "nobody@example.com"},
			setupMocks: func(m *authMocks) {
				m.userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name:        "mail dispatch failure",
			requestBody: map[string]interface{}{"email": "jane@example.com"},
			setupMocks: func(m *authMocks) {
				user := &models.User{ID: 1, Email: "jane@example.com"}
				m.userRepo.On("GetUserByEmail", "jane@example.com").Return(user, nil)
				m.resetRepo.On("Upsert", mock.AnythingOfType("*models.ResetPassword")).Return(nil)
				m.mailer.On("Send", "jane@example.com", "Password Reset Code", mock.AnythingOfType("string")).Return(errors.New("smtp down"))
				m.resetRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to send reset email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupAuthControllerWithMocks()
			tt.setupMocks(m)

			router := setupAuthTestRouter()
			router.POST("/forgot-password", controller.ForgotPassword)

			w := postJSON(router, "/forgot-password", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			m.userRepo.AssertExpectations(t)
			m.resetRepo.AssertExpectations(t)
			m.mailer.AssertExpectations(t)
		})
	}
}

func TestResetPassword(t *testing.T) {
	validBody := func() map[string]interface{} {
		return map[string]interface{}{
			"email":            "jane@example.com",
			"code":             "123456",
			"new_password":     "Efgh5678",
			"confirm_password": "Efgh5678",
		}
	}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*authMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful password reset",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				reset := &models.ResetPassword{
					Email:     "jane@example.com",
					Code:      "123456",
					ExpiresAt: time.Now().Add(5 * time.Minute),
				}
				m.resetRepo.On("FindByEmailAndCode", "jane@example.com", "123456").Return(reset, nil)
				m.userRepo.On("UpdatePassword", "jane@example.com", mock.AnythingOfType("string")).Return(nil)
				m.resetRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
				m.activityRepo.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Password reset successfully",
		},
		{
			name: "mismatched confirmation",
			requestBody: func() map[string]interface{} {
				body := validBody()
				body["confirm_password"] = "Other9999"
				return body
			}(),
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Passwords do not match",
		},
		{
			name: "weak new password",
			requestBody: func() map[string]interface{} {
				body := validBody()
				body["new_password"] = "short1A"
				body["confirm_password"] = "short1A"
				return body
			}(),
			setupMocks:     func(m *authMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password does not meet the policy",
		},
		{
			name:        "invalid or expired code",
			requestBody: validBody(),
			setupMocks: func(m *authMocks) {
				m.resetRepo.On("FindByEmailAndCode", "jane@example.com", "123456").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired reset code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupAuthControllerWithMocks()
			tt.setupMocks(m)

			router := setupAuthTestRouter()
			router.POST("/reset-password", controller.ResetPassword)

			w := postJSON(router, "/reset-password", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			m.resetRepo.AssertExpectations(t)
			m.userRepo.AssertExpectations(t)
		})
	}
}
