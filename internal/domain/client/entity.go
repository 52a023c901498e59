package client

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName               = errors.New("nome não pode ser vazio")
	ErrInvalidEmail            = errors.New("email inválido")
	ErrEmptyWhatsApp           = errors.New("whatsapp não pode ser vazio")
	ErrInvalidSleepSchedule    = errors.New("horário deve estar no formato HH:MM")
	ErrInvalidPurchaseLocation = errors.New("local de compra inválido")
)

// PurchaseLocation define o canal de aquisição do cliente
type PurchaseLocation string

const (
	PurchaseSiteOficial        PurchaseLocation = "site_oficial"
	PurchaseTikTokShop         PurchaseLocation = "tiktokshop"
	PurchaseRevendedorParceiro PurchaseLocation = "revendedor_parceiro"
	PurchaseOutros             PurchaseLocation = "outros"
)

// IsValid verifica se o canal de aquisição é válido
func (p PurchaseLocation) IsValid() bool {
	switch p {
	case PurchaseSiteOficial, PurchaseTikTokShop, PurchaseRevendedorParceiro, PurchaseOutros:
		return true
	}
	return false
}

var sleepScheduleRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Client representa um cliente cadastrado.
// Criado pelo formulário público de cadastro ou pelo painel administrativo;
// lido pelo job de lembretes.
type Client struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	WhatsApp           string           `json:"whatsapp"`
	BirthDate          *time.Time       `json:"birth_date"`
	SleepSchedule      string           `json:"sleep_schedule"` // HH:MM, horário diário do lembrete
	PurchaseLocation   PurchaseLocation `json:"purchase_location"`
	EstablishmentName  string           `json:"establishment_name"`
	ResellerID         *string          `json:"reseller_id"`
	LastReminderSentAt *time.Time       `json:"last_reminder_sent_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewClient cria um novo cliente validando os campos obrigatórios
func NewClient(name, email, whatsapp, sleepSchedule string, purchaseLocation PurchaseLocation) (*Client, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(whatsapp) == "" {
		return nil, ErrEmptyWhatsApp
	}
	if !sleepScheduleRe.MatchString(sleepSchedule) {
		return nil, ErrInvalidSleepSchedule
	}
	if !purchaseLocation.IsValid() {
		return nil, ErrInvalidPurchaseLocation
	}

	now := time.Now()
	return &Client{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		WhatsApp:         whatsapp,
		SleepSchedule:    sleepSchedule,
		PurchaseLocation: purchaseLocation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// FirstName retorna o primeiro nome do cliente, usado no template do lembrete
func (c *Client) FirstName() string {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return c.Name
	}
	return parts[0]
}

// NormalizedPhone retorna o WhatsApp apenas com dígitos, prefixado com o
// código do Brasil quando o número tem 10 ou 11 dígitos
func (c *Client) NormalizedPhone() string {
	var b strings.Builder
	for _, r := range c.WhatsApp {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 || len(digits) == 11 {
		return "55" + digits
	}
	return digits
}
