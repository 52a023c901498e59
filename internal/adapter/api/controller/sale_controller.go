package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	productdomain "github.com/nutrabene/backoffice/internal/domain/product"
	saledomain "github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/internal/service/ledger"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas. As mutações
// passam pelo ledger para manter estoque e lançamentos consistentes.
type SaleController struct {
	ledger   *ledger.Service
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(ledgerService *ledger.Service, saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		ledger:   ledgerService,
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func toSaleInput(req dto.SaleRequest) (ledger.SaleInput, error) {
	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		return ledger.SaleInput{}, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return ledger.SaleInput{}, err
	}
	return ledger.SaleInput{
		ProductID:          req.ProductID,
		ClientID:           req.ClientID,
		ResellerID:         req.ResellerID,
		Quantity:           req.Quantity,
		UnitPrice:          req.UnitPrice,
		DiscountPercentage: req.DiscountPercentage,
		SaleDate:           saleDate,
		DueDate:            dueDate,
	}, nil
}

// Create registra uma nova venda
// @Summary Registrar venda
// @Description Registra uma venda, decrementa o estoque e cria o recebível vinculado
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	input, err := toSaleInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar venda", err.Error()))
		return
	}

	sale, err := c.ledger.RegisterSale(ctx, input)
	if err != nil {
		if errors.Is(err, productdomain.ErrInsufficientStock) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", err.Error()))
			return
		}
		c.logger.Error("erro ao registrar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	sale, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna a lista de vendas paginada, mais recentes primeiro
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToSaleResponseList(sales), total, pagination))
}

// Update atualiza uma venda
// @Summary Atualizar venda
// @Description Atualiza uma venda reconciliando estoque e o recebível vinculado
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	input, err := toSaleInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar venda", err.Error()))
		return
	}

	sale, err := c.ledger.EditSale(ctx, ctx.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
		case errors.Is(err, productdomain.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro ao atualizar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// Delete remove uma venda
// @Summary Remover venda
// @Description Remove uma venda devolvendo a quantidade ao estoque
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	if err := c.ledger.DeleteSale(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao remover venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}
