package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/service/report"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// ReportController expõe os relatórios do painel
type ReportController struct {
	reports *report.Service
	logger  logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportService *report.Service, logger logger.Logger) *ReportController {
	return &ReportController{
		reports: reportService,
		logger:  logger,
	}
}

func monthlyParams(ctx *gin.Context) (int, time.Month, error) {
	now := time.Now()
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fmt.Errorf("ano inválido")
	}
	month, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("mês inválido")
	}
	return year, time.Month(month), nil
}

// MonthlySummary retorna o resumo mensal de vendas
// @Summary Resumo mensal
// @Description Consolida vendas do mês com totais e ranking de produtos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year query int false "Ano" default(2025)
// @Param month query int false "Mês (1-12)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/monthly-summary [get]
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	year, month, err := monthlyParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	summary, err := c.reports.MonthlySummary(ctx, year, month)
	if err != nil {
		c.logger.Error("erro ao gerar resumo mensal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar resumo mensal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("resumo mensal", summary))
}

// MonthlySummaryPDF retorna o resumo mensal em PDF
// @Summary Resumo mensal em PDF
// @Description Gera o resumo mensal de vendas como arquivo PDF
// @Tags reports
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param year query int false "Ano"
// @Param month query int false "Mês (1-12)"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/monthly-summary/pdf [get]
func (c *ReportController) MonthlySummaryPDF(ctx *gin.Context) {
	year, month, err := monthlyParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return
	}

	pdf, err := c.reports.MonthlySummaryPDF(ctx, year, month)
	if err != nil {
		c.logger.Error("erro ao gerar PDF do resumo mensal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar PDF", err.Error()))
		return
	}

	filename := fmt.Sprintf("resumo-%04d-%02d.pdf", year, int(month))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// PendingCommissionsPDF retorna as comissões pendentes em PDF
// @Summary Comissões pendentes em PDF
// @Description Gera o relatório de comissões pendentes por revendedor como PDF
// @Tags reports
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/pending-commissions/pdf [get]
func (c *ReportController) PendingCommissionsPDF(ctx *gin.Context) {
	pdf, err := c.reports.PendingCommissionsPDF(ctx)
	if err != nil {
		c.logger.Error("erro ao gerar PDF de comissões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar PDF", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=\"comissoes-pendentes.pdf\"")
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
