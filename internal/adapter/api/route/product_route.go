package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.POST("/:id/stock-adjustment", productController.AdjustStock)
	}
}
