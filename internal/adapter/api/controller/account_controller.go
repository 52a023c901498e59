package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	accountdomain "github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// AccountController gerencia as contas bancárias
type AccountController struct {
	accountRepo accountdomain.Repository
	logger      logger.Logger
}

// NewAccountController cria uma nova instância de AccountController
func NewAccountController(accountRepo accountdomain.Repository, logger logger.Logger) *AccountController {
	return &AccountController{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create cria uma conta bancária
// @Summary Criar conta bancária
// @Description Cria uma conta bancária com saldo inicial
// @Tags accounts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param account body dto.BankAccountRequest true "Dados da conta"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank-accounts [post]
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.BankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	acc, err := accountdomain.NewBankAccount(req.Name, req.Balance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar conta", err.Error()))
		return
	}

	if err := c.accountRepo.Create(ctx, acc); err != nil {
		c.logger.Error("erro ao criar conta bancária no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankAccountResponse(acc))
}

// Get retorna uma conta bancária pelo ID
// @Summary Buscar conta bancária
// @Description Retorna os dados de uma conta bancária pelo ID
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank-accounts/{id} [get]
func (c *AccountController) Get(ctx *gin.Context) {
	acc, err := c.accountRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBankAccountNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar conta bancária", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(acc))
}

// List retorna a lista de contas bancárias
// @Summary Listar contas bancárias
// @Description Retorna a lista de contas bancárias paginada
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank-accounts [get]
func (c *AccountController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	accounts, err := c.accountRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar contas bancárias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas", err.Error()))
		return
	}

	total, err := c.accountRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar contas bancárias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar contas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToBankAccountResponseList(accounts), total, pagination))
}

// Update atualiza uma conta bancária
// @Summary Atualizar conta bancária
// @Description Atualiza os dados de uma conta bancária existente
// @Tags accounts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Param account body dto.BankAccountRequest true "Dados da conta"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank-accounts/{id} [put]
func (c *AccountController) Update(ctx *gin.Context) {
	var req dto.BankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	acc, err := c.accountRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBankAccountNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar conta bancária", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar conta", err.Error()))
		return
	}

	acc.Name = req.Name
	acc.Balance = req.Balance

	if err := c.accountRepo.Update(ctx, acc); err != nil {
		c.logger.Error("erro ao atualizar conta bancária", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(acc))
}

// Delete remove uma conta bancária
// @Summary Remover conta bancária
// @Description Remove uma conta bancária do sistema
// @Tags accounts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da conta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank-accounts/{id} [delete]
func (c *AccountController) Delete(ctx *gin.Context) {
	if err := c.accountRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBankAccountNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao remover conta bancária", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("conta removida com sucesso", nil))
}
