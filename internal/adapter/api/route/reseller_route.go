package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterResellerRoutes registra as rotas do módulo de revendedores
func RegisterResellerRoutes(r *gin.RouterGroup, resellerController *controller.ResellerController) {
	resellers := r.Group("/resellers")
	{
		resellers.POST("", resellerController.Create)
		resellers.GET("", resellerController.List)
		resellers.GET("/commissions", resellerController.PendingCommissions)
		resellers.GET("/:id", resellerController.Get)
		resellers.PUT("/:id", resellerController.Update)
		resellers.DELETE("/:id", resellerController.Delete)
		resellers.POST("/:id/close-commissions", resellerController.CloseCommissions)
	}
}
