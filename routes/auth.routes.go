package routes

import (
	"resumatch/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	router.POST("/register", authController.Register)
	router.POST("/verify", authController.VerifyCode)
	router.POST("/resend-code", authController.ResendCode)
	router.POST("/login", authController.Login)
	router.POST("/forgot-password", authController.ForgotPassword)
	router.POST("/reset-password", authController.ResetPassword)
}
