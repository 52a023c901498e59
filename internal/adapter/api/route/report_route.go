package route

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	{
		reports.GET("/monthly-summary", reportController.MonthlySummary)
		reports.GET("/monthly-summary/pdf", reportController.MonthlySummaryPDF)
		reports.GET("/pending-commissions/pdf", reportController.PendingCommissionsPDF)
	}
}
