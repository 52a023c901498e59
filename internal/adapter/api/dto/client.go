package dto

import (
	"time"

	"github.com/nutrabene/backoffice/internal/domain/client"
)

// RegistrationRequest representa o cadastro público de cliente
type RegistrationRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	WhatsApp          string  `json:"whatsapp" binding:"required"`
	BirthDate         *string `json:"birth_date"`
	SleepSchedule     string  `json:"sleep_schedule" binding:"required"`
	PurchaseLocation  string  `json:"purchase_location" binding:"required"`
	EstablishmentName string  `json:"establishment_name"`
	ResellerID        *string `json:"reseller_id"`
}

// ClientRequest representa criação/edição de cliente pelo painel
type ClientRequest struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	WhatsApp          string  `json:"whatsapp" binding:"required"`
	BirthDate         *string `json:"birth_date"`
	SleepSchedule     string  `json:"sleep_schedule" binding:"required"`
	PurchaseLocation  string  `json:"purchase_location" binding:"required"`
	EstablishmentName string  `json:"establishment_name"`
	ResellerID        *string `json:"reseller_id"`
}

// ClientResponse representa um cliente na resposta
type ClientResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	WhatsApp           string     `json:"whatsapp"`
	BirthDate          *string    `json:"birth_date"`
	SleepSchedule      string     `json:"sleep_schedule"`
	PurchaseLocation   string     `json:"purchase_location"`
	EstablishmentName  string     `json:"establishment_name,omitempty"`
	ResellerID         *string    `json:"reseller_id"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ToClientResponse converte a entidade para o DTO de resposta
func ToClientResponse(c *client.Client) ClientResponse {
	var birthDate *string
	if c.BirthDate != nil {
		s := c.BirthDate.Format("2006-01-02")
		birthDate = &s
	}
	return ClientResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		WhatsApp:           c.WhatsApp,
		BirthDate:          birthDate,
		SleepSchedule:      c.SleepSchedule,
		PurchaseLocation:   string(c.PurchaseLocation),
		EstablishmentName:  c.EstablishmentName,
		ResellerID:         c.ResellerID,
		LastReminderSentAt: c.LastReminderSentAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToClientResponseList converte uma lista de entidades
func ToClientResponseList(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
