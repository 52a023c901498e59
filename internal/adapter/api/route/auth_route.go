package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(public, protected *gin.RouterGroup, authController *controller.AuthController) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	protected.GET("/auth/me", authController.Me)
}
