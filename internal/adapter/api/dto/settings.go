package dto

import (
	"time"

	"github.com/nutrabene/backoffice/internal/domain/settings"
)

// TemplateRequest representa a atualização do template do lembrete
type TemplateRequest struct {
	MessageTemplate string `json:"message_template" binding:"required"`
}

// SettingsResponse representa as configurações de lembrete na resposta
type SettingsResponse struct {
	Key             string    `json:"key"`
	MessageTemplate string    `json:"message_template"`
	MediaURL        string    `json:"media_url,omitempty"`
	MediaType       string    `json:"media_type,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToSettingsResponse converte a entidade para o DTO de resposta
func ToSettingsResponse(s *settings.ReminderSettings) SettingsResponse {
	return SettingsResponse{
		Key:             s.Key,
		MessageTemplate: s.MessageTemplate,
		MediaURL:        s.MediaURL,
		MediaType:       string(s.MediaType),
		UpdatedAt:       s.UpdatedAt,
	}
}

// ReminderJobRequest representa o disparo manual do job de lembretes
type ReminderJobRequest struct {
	Time string `json:"time" binding:"omitempty,len=5" example:"22:30"`
}
