package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	resellerdomain "github.com/nutrabene/backoffice/internal/domain/reseller"
	"github.com/nutrabene/backoffice/internal/service/ledger"
	"github.com/nutrabene/backoffice/internal/service/report"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// ResellerController gerencia as requisições relacionadas a revendedores,
// incluindo o fechamento de comissões
type ResellerController struct {
	resellerRepo resellerdomain.Repository
	ledger       *ledger.Service
	reports      *report.Service
	logger       logger.Logger
}

// NewResellerController cria uma nova instância de ResellerController
func NewResellerController(
	resellerRepo resellerdomain.Repository,
	ledgerService *ledger.Service,
	reportService *report.Service,
	logger logger.Logger,
) *ResellerController {
	return &ResellerController{
		resellerRepo: resellerRepo,
		ledger:       ledgerService,
		reports:      reportService,
		logger:       logger,
	}
}

// Create cria um novo revendedor
// @Summary Criar revendedor
// @Description Cria um novo revendedor parceiro
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reseller body dto.ResellerRequest true "Dados do revendedor"
// @Success 201 {object} dto.ResellerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers [post]
func (c *ResellerController) Create(ctx *gin.Context) {
	var req dto.ResellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rs, err := resellerdomain.NewReseller(req.Name, req.Email, req.WhatsApp, req.CommissionRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar revendedor", err.Error()))
		return
	}

	if err := c.resellerRepo.Create(ctx, rs); err != nil {
		c.logger.Error("erro ao criar revendedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar revendedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToResellerResponse(rs))
}

// Get retorna um revendedor pelo ID
// @Summary Buscar revendedor
// @Description Retorna os dados de um revendedor pelo ID
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do revendedor"
// @Success 200 {object} dto.ResellerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/{id} [get]
func (c *ResellerController) Get(ctx *gin.Context) {
	rs, err := c.resellerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "revendedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar revendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar revendedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResellerResponse(rs))
}

// List retorna a lista de revendedores
// @Summary Listar revendedores
// @Description Retorna a lista de revendedores paginada
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers [get]
func (c *ResellerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	resellers, err := c.resellerRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar revendedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar revendedores", err.Error()))
		return
	}

	total, err := c.resellerRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar revendedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar revendedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToResellerResponseList(resellers), total, pagination))
}

// Update atualiza um revendedor
// @Summary Atualizar revendedor
// @Description Atualiza os dados de um revendedor existente
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do revendedor"
// @Param reseller body dto.ResellerRequest true "Dados do revendedor"
// @Success 200 {object} dto.ResellerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/{id} [put]
func (c *ResellerController) Update(ctx *gin.Context) {
	var req dto.ResellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rs, err := c.resellerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "revendedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar revendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar revendedor", err.Error()))
		return
	}

	if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(decimalHundred) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar revendedor", resellerdomain.ErrInvalidCommissionRate.Error()))
		return
	}

	rs.Name = req.Name
	rs.Email = req.Email
	rs.WhatsApp = req.WhatsApp
	rs.CommissionRate = req.CommissionRate

	if err := c.resellerRepo.Update(ctx, rs); err != nil {
		c.logger.Error("erro ao atualizar revendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar revendedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResellerResponse(rs))
}

// Delete remove um revendedor
// @Summary Remover revendedor
// @Description Remove um revendedor do sistema
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do revendedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/{id} [delete]
func (c *ResellerController) Delete(ctx *gin.Context) {
	if err := c.resellerRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "revendedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover revendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover revendedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("revendedor removido com sucesso", nil))
}

// PendingCommissions retorna as comissões pendentes por revendedor
// @Summary Comissões pendentes
// @Description Consolida as vendas pendentes e a comissão devida por revendedor
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/commissions [get]
func (c *ResellerController) PendingCommissions(ctx *gin.Context) {
	commissions, err := c.reports.PendingCommissions(ctx)
	if err != nil {
		c.logger.Error("erro ao consolidar comissões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consolidar comissões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("comissões pendentes", commissions))
}

// CloseCommissions fecha as comissões de um revendedor
// @Summary Fechar comissões
// @Description Marca as vendas informadas e seus recebíveis como pagos
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do revendedor"
// @Param closing body dto.CloseCommissionsRequest true "Vendas a fechar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/{id}/close-commissions [post]
func (c *ResellerController) CloseCommissions(ctx *gin.Context) {
	var req dto.CloseCommissionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	resellerID := ctx.Param("id")
	if _, err := c.resellerRepo.FindByID(ctx, resellerID); err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "revendedor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar revendedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar revendedor", err.Error()))
		return
	}

	if err := c.ledger.CloseResellerCommissions(ctx, resellerID, req.SaleIDs); err != nil {
		c.logger.Error("erro ao fechar comissões", "error", err, "reseller_id", resellerID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao fechar comissões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("comissões fechadas com sucesso", gin.H{
		"reseller_id": resellerID,
		"sales":       len(req.SaleIDs),
	}))
}
