package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterSettingsRoutes registra as rotas de configuração do lembrete
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/reminder-settings")
	{
		settings.GET("", settingsController.Get)
		settings.PUT("/template", settingsController.UpdateTemplate)
		settings.POST("/media", settingsController.UploadMedia)
	}
}
