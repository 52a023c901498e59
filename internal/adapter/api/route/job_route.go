package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterJobRoutes registra as rotas de jobs. A autenticação é feita pelo
// próprio controller via segredo compartilhado, fora do grupo protegido.
func RegisterJobRoutes(public *gin.RouterGroup, jobController *controller.JobController) {
	public.POST("/jobs/send-reminders", jobController.SendReminders)
}
