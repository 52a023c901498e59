package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrabene/backoffice/internal/adapter/api/dto"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	"github.com/nutrabene/backoffice/internal/domain/settings"
	"github.com/nutrabene/backoffice/internal/infrastructure/storage"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// tamanho máximo aceito para a mídia do lembrete
const maxMediaSize = 10 << 20 // 10 MB

// SettingsController gerencia as configurações do lembrete diário
type SettingsController struct {
	settingsRepo settings.Repository
	uploader     storage.Uploader
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settings.Repository, uploader storage.Uploader, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		uploader:     uploader,
		logger:       logger,
	}
}

// Get retorna as configurações do lembrete
// @Summary Buscar configurações
// @Description Retorna o template da mensagem e a mídia configurada
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reminder-settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	st, err := c.settingsRepo.Get(ctx, settings.DefaultKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// sem registro ainda: responde os padrões
			ctx.JSON(http.StatusOK, dto.SettingsResponse{
				Key:             settings.DefaultKey,
				MessageTemplate: settings.DefaultMessageTemplate,
			})
			return
		}
		c.logger.Error("erro ao buscar configurações de lembrete", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(st))
}

// UpdateTemplate atualiza o template da mensagem
// @Summary Atualizar template
// @Description Atualiza o template da mensagem diária; o marcador {nome} é substituído pelo primeiro nome do cliente
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param template body dto.TemplateRequest true "Template da mensagem"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reminder-settings/template [put]
func (c *SettingsController) UpdateTemplate(ctx *gin.Context) {
	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.settingsRepo.UpdateTemplate(ctx, settings.DefaultKey, req.MessageTemplate); err != nil {
		c.logger.Error("erro ao atualizar template do lembrete", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar template", err.Error()))
		return
	}

	st, err := c.settingsRepo.Get(ctx, settings.DefaultKey)
	if err != nil {
		c.logger.Error("erro ao recarregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(st))
}

// UploadMedia recebe a mídia do lembrete e a envia ao storage
// @Summary Enviar mídia
// @Description Envia a imagem ou PDF anexado ao lembrete diário
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param file formData file true "Imagem (JPEG/PNG) ou PDF"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reminder-settings/media [post]
func (c *SettingsController) UploadMedia(ctx *gin.Context) {
	if c.uploader == nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "storage de mídia não configurado", ""))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo não informado", err.Error()))
		return
	}
	if fileHeader.Size > maxMediaSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo excede o tamanho máximo de 10MB", ""))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	mediaType, err := mediaTypeFor(contentType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "tipo de arquivo não suportado", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.logger.Error("erro ao abrir arquivo enviado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ler arquivo", err.Error()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.logger.Error("erro ao ler arquivo enviado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ler arquivo", err.Error()))
		return
	}

	key := fmt.Sprintf("reminders/%s-%s%s",
		time.Now().Format("20060102"), uuid.New().String()[:8], filepath.Ext(fileHeader.Filename))

	url, err := c.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		c.logger.Error("erro ao enviar mídia para o storage", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao enviar mídia", err.Error()))
		return
	}

	if err := c.settingsRepo.UpdateMedia(ctx, settings.DefaultKey, url, mediaType); err != nil {
		c.logger.Error("erro ao salvar mídia do lembrete", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar mídia", err.Error()))
		return
	}

	st, err := c.settingsRepo.Get(ctx, settings.DefaultKey)
	if err != nil {
		c.logger.Error("erro ao recarregar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(st))
}

func mediaTypeFor(contentType string) (settings.MediaType, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return settings.MediaTypeImage, nil
	case contentType == "application/pdf":
		return settings.MediaTypeFile, nil
	default:
		return "", fmt.Errorf("tipo %q não suportado, envie imagem ou PDF", contentType)
	}
}
