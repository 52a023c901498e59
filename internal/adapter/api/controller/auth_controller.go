package controller

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	admindomain "github.com/nutrabene/backoffice/internal/domain/admin"
	"github.com/nutrabene/backoffice/pkg/auth"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// AuthController gerencia autenticação dos administradores
type AuthController struct {
	adminRepo  admindomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(adminRepo admindomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica um administrador
// @Summary Login
// @Description Autentica um administrador e retorna o token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	adm, err := c.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar administrador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !adm.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(adm)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{Token: token, Admin: dto.ToAdminResponse(adm)})
}

// Me retorna o administrador autenticado
// @Summary Dados do administrador autenticado
// @Description Retorna os dados do administrador do token corrente
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.AdminResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	email := ctx.GetString("admin_email")

	adm, err := c.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		c.logger.Error("erro ao buscar administrador autenticado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar administrador", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminResponse(adm))
}

// Register cadastra um administrador mediante a chave de setup
// @Summary Cadastrar administrador
// @Description Cadastra um administrador; exige a chave de setup configurada no servidor
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body dto.RegisterAdminRequest true "Dados do administrador"
// @Success 201 {object} dto.AdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	setupKey := os.Getenv("ADMIN_SETUP_KEY")
	if setupKey == "" || req.SetupKey != setupKey {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "chave de setup inválida", ""))
		return
	}

	adm, err := admindomain.NewAdmin(req.Name, req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar administrador", err.Error()))
		return
	}

	if err := c.adminRepo.Create(ctx, adm); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já cadastrado", ""))
			return
		}
		c.logger.Error("erro ao salvar administrador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar administrador", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdminResponse(adm))
}
