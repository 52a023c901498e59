package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/service/ledger"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// FinanceController gerencia os lançamentos financeiros. A criação e as
// transições de status passam pelo ledger para manter os saldos consistentes.
type FinanceController struct {
	ledger    *ledger.Service
	entryRepo finance.EntryRepository
	logger    logger.Logger
}

// NewFinanceController cria uma nova instância de FinanceController
func NewFinanceController(ledgerService *ledger.Service, entryRepo finance.EntryRepository, logger logger.Logger) *FinanceController {
	return &FinanceController{
		ledger:    ledgerService,
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func buildEntryFilter(ctx *gin.Context) (finance.EntryFilter, error) {
	filter := finance.EntryFilter{
		Type:     finance.EntryType(ctx.Query("type")),
		Status:   finance.EntryStatus(ctx.Query("status")),
		Category: ctx.Query("category"),
	}

	if from := ctx.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return finance.EntryFilter{}, err
		}
		filter.From = &t
	}
	if to := ctx.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return finance.EntryFilter{}, err
		}
		filter.To = &t
	}
	return filter, nil
}

// Create cria um lançamento financeiro
// @Summary Criar lançamento
// @Description Cria um lançamento financeiro; compras parceladas no cartão geram N lançamentos mensais
// @Tags finance
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param entry body dto.EntryRequest true "Dados do lançamento"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries [post]
func (c *FinanceController) Create(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		return
	}

	created, err := c.ledger.CreateFinancialEntry(ctx, ledger.EntryInput{
		Type:              finance.EntryType(req.Type),
		Description:       req.Description,
		Amount:            req.Amount,
		EntryDate:         entryDate,
		DueDate:           dueDate,
		Status:            finance.EntryStatus(req.Status),
		Category:          req.Category,
		PaymentMethod:     finance.PaymentMethod(req.PaymentMethod),
		BankAccountID:     req.BankAccountID,
		CreditCardID:      req.CreditCardID,
		InstallmentsTotal: req.InstallmentsTotal,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingCreditCard):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		case errors.Is(err, ledger.ErrMissingBankAccount):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "nenhuma conta bancária cadastrada", err.Error()))
		case errors.Is(err, finance.ErrInvalidAmount), errors.Is(err, finance.ErrEmptyDescription),
			errors.Is(err, finance.ErrInvalidType), errors.Is(err, finance.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		default:
			c.logger.Error("erro ao criar lançamento financeiro", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar lançamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("lançamento criado com sucesso", dto.ToEntryResponseList(created)))
}

// Get retorna um lançamento pelo ID
// @Summary Buscar lançamento
// @Description Retorna os dados de um lançamento financeiro pelo ID
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries/{id} [get]
func (c *FinanceController) Get(ctx *gin.Context) {
	entry, err := c.entryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// List retorna a lista de lançamentos
// @Summary Listar lançamentos
// @Description Retorna os lançamentos financeiros com filtros por tipo, status, categoria e período
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param type query string false "Tipo (receivable|payable)"
// @Param status query string false "Status (pending|paid|overdue)"
// @Param category query string false "Categoria"
// @Param from query string false "Vencimento a partir de (AAAA-MM-DD)"
// @Param to query string false "Vencimento até (AAAA-MM-DD)"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries [get]
func (c *FinanceController) List(ctx *gin.Context) {
	filter, err := buildEntryFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro inválido", err.Error()))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	entries, err := c.entryRepo.List(ctx, filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	total, err := c.entryRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao contar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.ToEntryResponseList(entries), total, pagination))
}

// Update atualiza um lançamento
// @Summary Atualizar lançamento
// @Description Atualiza um lançamento; transições pending↔paid aplicam/revertem a baixa bancária
// @Tags finance
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Param entry body dto.EntryUpdateRequest true "Dados do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries/{id} [put]
func (c *FinanceController) Update(ctx *gin.Context) {
	var req dto.EntryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar lançamento", err.Error()))
		return
	}

	id := ctx.Param("id")
	entry, err := c.entryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	newStatus := finance.EntryStatus(req.Status)

	// a baixa (e sua reversão) usa o valor vigente antes da edição
	switch {
	case newStatus == finance.EntryStatusPaid && !entry.IsPaid():
		if _, err := c.ledger.MarkEntryPaid(ctx, id); err != nil {
			if errors.Is(err, ledger.ErrMissingBankAccount) {
				ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "nenhuma conta bancária cadastrada", err.Error()))
				return
			}
			c.logger.Error("erro ao dar baixa no lançamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao dar baixa no lançamento", err.Error()))
			return
		}
	case newStatus != finance.EntryStatusPaid && entry.IsPaid():
		if _, err := c.ledger.RevertEntryPaid(ctx, id); err != nil {
			c.logger.Error("erro ao reverter baixa do lançamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao reverter baixa", err.Error()))
			return
		}
	}

	entry, err = c.entryRepo.FindByID(ctx, id)
	if err != nil {
		c.logger.Error("erro ao recarregar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	entry.Description = req.Description
	entry.Amount = req.Amount
	entry.EntryDate = entryDate
	entry.DueDate = dueDate
	entry.Category = req.Category
	if req.PaymentMethod != "" {
		entry.PaymentMethod = finance.PaymentMethod(req.PaymentMethod)
	}
	if req.BankAccountID != nil {
		entry.BankAccountID = req.BankAccountID
	}
	if newStatus == finance.EntryStatusOverdue {
		entry.Status = finance.EntryStatusOverdue
	}

	if err := c.entryRepo.Update(ctx, entry); err != nil {
		c.logger.Error("erro ao atualizar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Delete remove um lançamento
// @Summary Remover lançamento
// @Description Remove um lançamento financeiro
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries/{id} [delete]
func (c *FinanceController) Delete(ctx *gin.Context) {
	if err := c.entryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("lançamento removido com sucesso", nil))
}

// Pay marca um lançamento como pago
// @Summary Pagar lançamento
// @Description Marca um lançamento como pago e aplica o ajuste no saldo da conta; idempotente
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries/{id}/pay [post]
func (c *FinanceController) Pay(ctx *gin.Context) {
	entry, err := c.ledger.MarkEntryPaid(ctx, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEntryNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
		case errors.Is(err, ledger.ErrMissingBankAccount):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "nenhuma conta bancária cadastrada", err.Error()))
		default:
			c.logger.Error("erro ao dar baixa no lançamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao dar baixa no lançamento", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Revert desfaz a baixa de um lançamento pago
// @Summary Reverter baixa
// @Description Desfaz a baixa de um lançamento pago, revertendo o ajuste de saldo
// @Tags finance
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-entries/{id}/revert-payment [post]
func (c *FinanceController) Revert(ctx *gin.Context) {
	entry, err := c.ledger.RevertEntryPaid(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao reverter baixa do lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao reverter baixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
