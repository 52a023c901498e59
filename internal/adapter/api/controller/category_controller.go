package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// CategoryController gerencia as categorias financeiras
type CategoryController struct {
	categoryRepo finance.CategoryRepository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo finance.CategoryRepository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma categoria financeira
// @Summary Criar categoria
// @Description Cria uma categoria financeira de entrada ou saída
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := finance.NewCategory(req.Name, finance.CategoryType(req.Type))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já cadastrada", ""))
			return
		}
		c.logger.Error("erro ao criar categoria no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// List retorna todas as categorias
// @Summary Listar categorias
// @Description Retorna todas as categorias financeiras ordenadas por nome
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categorias", dto.ToCategoryResponseList(categories)))
}

// Update atualiza uma categoria
// @Summary Atualizar categoria
// @Description Atualiza uma categoria financeira existente
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	categoryType := finance.CategoryType(req.Type)
	if !categoryType.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar categoria", finance.ErrInvalidCategoryType.Error()))
		return
	}

	category.Name = req.Name
	category.Type = categoryType

	if err := c.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já cadastrada", ""))
			return
		}
		c.logger.Error("erro ao atualizar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete remove uma categoria
// @Summary Remover categoria
// @Description Remove uma categoria financeira
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial-categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao remover categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria removida com sucesso", nil))
}
