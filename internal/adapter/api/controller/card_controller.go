package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	carddomain "github.com/nutrabene/backoffice/internal/domain/card"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// CardController gerencia os cartões de crédito
type CardController struct {
	cardRepo carddomain.Repository
	logger   logger.Logger
}

// NewCardController cria uma nova instância de CardController
func NewCardController(cardRepo carddomain.Repository, logger logger.Logger) *CardController {
	return &CardController{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// Create cria um cartão de crédito
// @Summary Criar cartão
// @Description Cadastra um cartão de crédito com limite e dias de fechamento e vencimento
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param card body dto.CreditCardRequest true "Dados do cartão"
// @Success 201 {object} dto.CreditCardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-cards [post]
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	card, err := carddomain.NewCreditCard(req.Name, req.Limit, req.ClosingDay, req.DueDay)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cartão", err.Error()))
		return
	}

	if err := c.cardRepo.Create(ctx, card); err != nil {
		c.logger.Error("erro ao criar cartão no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cartão", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

// Get retorna um cartão pelo ID
// @Summary Buscar cartão
// @Description Retorna os dados de um cartão de crédito pelo ID
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cartão"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-cards/{id} [get]
func (c *CardController) Get(ctx *gin.Context) {
	card, err := c.cardRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCreditCardNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cartão não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cartão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cartão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// List retorna a lista de cartões
// @Summary Listar cartões
// @Description Retorna a lista de cartões de crédito paginada
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-cards [get]
func (c *CardController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	cards, err := c.cardRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar cartões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar cartões", err.Error()))
		return
	}

	total, err := c.cardRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar cartões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar cartões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToCreditCardResponseList(cards), total, pagination))
}

// Update atualiza um cartão
// @Summary Atualizar cartão
// @Description Atualiza os dados de um cartão de crédito existente
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cartão"
// @Param card body dto.CreditCardRequest true "Dados do cartão"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-cards/{id} [put]
func (c *CardController) Update(ctx *gin.Context) {
	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	card, err := c.cardRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCreditCardNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cartão não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cartão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cartão", err.Error()))
		return
	}

	card.Name = req.Name
	card.Limit = req.Limit
	card.ClosingDay = req.ClosingDay
	card.DueDay = req.DueDay

	if err := c.cardRepo.Update(ctx, card); err != nil {
		c.logger.Error("erro ao atualizar cartão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cartão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// Delete remove um cartão
// @Summary Remover cartão
// @Description Remove um cartão de crédito do sistema
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cartão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-cards/{id} [delete]
func (c *CardController) Delete(ctx *gin.Context) {
	if err := c.cardRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCreditCardNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cartão não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover cartão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cartão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cartão removido com sucesso", nil))
}
