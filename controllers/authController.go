package controllers

import (
	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
	Issuer  *utils.TokenIssuer
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler, issuer *utils.TokenIssuer) *AuthController {
	return &AuthController{
		Handler: authHandler,
		Issuer:  issuer,
	}
}

// RegisterRoutes initializes the session routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/login", ac.Handler.Login)

	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware(ac.Issuer))
	{
		authGroup.POST("/logout", ac.Handler.Logout)
	}
}
