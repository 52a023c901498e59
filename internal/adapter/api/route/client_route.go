package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterClientRoutes registra as rotas do módulo de clientes. O cadastro
// público do site entra sem autenticação; o restante fica no grupo protegido.
func RegisterClientRoutes(public, protected *gin.RouterGroup, clientController *controller.ClientController) {
	public.POST("/registrations", clientController.Register)

	clients := protected.Group("/clients")
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}
