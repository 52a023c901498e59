package controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/service/notifier"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// JobController expõe o disparo do job de lembretes para agendadores
// externos. A autenticação é por segredo compartilhado no header X-Cron-Secret
type JobController struct {
	notifier *notifier.Service
	logger   logger.Logger
}

// NewJobController cria uma nova instância de JobController
func NewJobController(notifierService *notifier.Service, logger logger.Logger) *JobController {
	return &JobController{
		notifier: notifierService,
		logger:   logger,
	}
}

// SendReminders executa uma passada do job de lembretes
// @Summary Disparar lembretes
// @Description Executa o envio de lembretes do horário corrente; aceita horário manual para testes
// @Tags jobs
// @Accept json
// @Produce json
// @Param X-Cron-Secret header string true "Segredo compartilhado do agendador"
// @Param job body dto.ReminderJobRequest false "Horário manual (HH:MM)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/send-reminders [post]
func (c *JobController) SendReminders(ctx *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" || ctx.GetHeader("X-Cron-Secret") != secret {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso não autorizado", ""))
		return
	}

	var req dto.ReminderJobRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}
	}

	result, err := c.notifier.Run(ctx, req.Time)
	if err != nil {
		c.logger.Error("erro ao executar job de lembretes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao executar job", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("job executado", result))
}
