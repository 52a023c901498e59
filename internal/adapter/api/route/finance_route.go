package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterFinanceRoutes registra as rotas do módulo financeiro
func RegisterFinanceRoutes(
	r *gin.RouterGroup,
	financeController *controller.FinanceController,
	categoryController *controller.CategoryController,
	accountController *controller.AccountController,
	cardController *controller.CardController,
) {
	entries := r.Group("/financial-entries")
	{
		entries.POST("", financeController.Create)
		entries.GET("", financeController.List)
		entries.GET("/:id", financeController.Get)
		entries.PUT("/:id", financeController.Update)
		entries.DELETE("/:id", financeController.Delete)
		entries.POST("/:id/pay", financeController.Pay)
		entries.POST("/:id/revert-payment", financeController.Revert)
	}

	categories := r.Group("/financial-categories")
	{
		categories.POST("", categoryController.Create)
		categories.GET("", categoryController.List)
		categories.PUT("/:id", categoryController.Update)
		categories.DELETE("/:id", categoryController.Delete)
	}

	accounts := r.Group("/bank-accounts")
	{
		accounts.POST("", accountController.Create)
		accounts.GET("", accountController.List)
		accounts.GET("/:id", accountController.Get)
		accounts.PUT("/:id", accountController.Update)
		accounts.DELETE("/:id", accountController.Delete)
	}

	cards := r.Group("/credit-cards")
	{
		cards.POST("", cardController.Create)
		cards.GET("", cardController.List)
		cards.GET("/:id", cardController.Get)
		cards.PUT("/:id", cardController.Update)
		cards.DELETE("/:id", cardController.Delete)
	}
}
