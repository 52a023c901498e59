package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nutrabene/backoffice/internal/domain/client"
	"github.com/nutrabene/backoffice/internal/domain/settings"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// DocumentFilename é o nome do arquivo enviado quando a mídia é um documento
const DocumentFilename = "Nutrabene-Dica.pdf"

// Gateway abstrai o provedor de mensagens WhatsApp
type Gateway interface {
	SendText(ctx context.Context, phone, message string) error
	SendImage(ctx context.Context, phone, imageURL, caption string) error
	SendDocument(ctx context.Context, phone, documentURL, filename, caption string) error
}

// DetailStatus é o resultado do envio para um cliente
type DetailStatus string

const (
	StatusSuccess DetailStatus = "success"
	StatusFailed  DetailStatus = "failed"
	StatusError   DetailStatus = "error"
)

// Detail descreve o resultado do envio para um único cliente
type Detail struct {
	User   string       `json:"user"`
	Status DetailStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// Result é o resumo de uma execução do job de lembretes
type Result struct {
	Processed int      `json:"processed"`
	Time      string   `json:"time"`
	Date      string   `json:"date"`
	Details   []Detail `json:"details"`
}

// Service envia o lembrete diário aos clientes cujo horário configurado
// coincide com o horário corrente no fuso de São Paulo. Cada cliente recebe
// no máximo um lembrete por dia; falhas de envio são isoladas por cliente.
type Service struct {
	clients  client.Repository
	settings settings.Repository
	gateway  Gateway
	location *time.Location
	now      func() time.Time
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de lembretes
func NewService(
	clients client.Repository,
	st settings.Repository,
	gateway Gateway,
	location *time.Location,
	log logger.Logger,
) *Service {
	return &Service{
		clients:  clients,
		settings: st,
		gateway:  gateway,
		location: location,
		now:      time.Now,
		logger:   log,
	}
}

// Run executa uma passada do job. overrideTime ("HH:MM") substitui o horário
// corrente, usado para disparos manuais de teste.
func (s *Service) Run(ctx context.Context, overrideTime string) (*Result, error) {
	now := s.now().In(s.location)

	timeStr := now.Format("15:04")
	if overrideTime != "" {
		timeStr = overrideTime
	}

	result := &Result{
		Time: timeStr,
		Date: now.Format("2006-01-02"),
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	due, err := s.clients.FindDueForReminder(ctx, timeStr, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes do horário %s: %w", timeStr, err)
	}
	if len(due) == 0 {
		return result, nil
	}

	cfg := s.loadSettings(ctx)

	for _, c := range due {
		result.Details = append(result.Details, s.notify(ctx, c, cfg, now))
	}
	// processed conta todas as tentativas, inclusive as que falharam
	result.Processed = len(result.Details)

	s.logger.Info("job de lembretes executado", "time", timeStr,
		"due", len(due), "processed", result.Processed)
	return result, nil
}

// loadSettings busca as configurações, caindo nos padrões quando o registro
// ainda não foi criado
func (s *Service) loadSettings(ctx context.Context) *settings.ReminderSettings {
	cfg, err := s.settings.Get(ctx, settings.DefaultKey)
	if err != nil {
		s.logger.Warn("configurações de lembrete indisponíveis, usando padrão", "error", err)
		return &settings.ReminderSettings{
			Key:             settings.DefaultKey,
			MessageTemplate: settings.DefaultMessageTemplate,
		}
	}
	if cfg.MessageTemplate == "" {
		cfg.MessageTemplate = settings.DefaultMessageTemplate
	}
	return cfg
}

// notify envia o lembrete a um único cliente. Erros não interrompem os
// demais envios; cada cliente recebe seu próprio status no resultado.
func (s *Service) notify(ctx context.Context, c *client.Client, cfg *settings.ReminderSettings, now time.Time) Detail {
	phone := c.NormalizedPhone()
	if phone == "" {
		return Detail{User: c.Name, Status: StatusError, Error: "cliente sem número de WhatsApp válido"}
	}

	message := strings.ReplaceAll(cfg.MessageTemplate, "{nome}", c.FirstName())

	var err error
	switch {
	case cfg.MediaURL != "" && cfg.MediaType == settings.MediaTypeImage:
		err = s.gateway.SendImage(ctx, phone, cfg.MediaURL, message)
	case cfg.MediaURL != "" && cfg.MediaType == settings.MediaTypeFile:
		err = s.gateway.SendDocument(ctx, phone, cfg.MediaURL, DocumentFilename, message)
	default:
		err = s.gateway.SendText(ctx, phone, message)
	}
	if err != nil {
		s.logger.Error("falha ao enviar lembrete", "client_id", c.ID, "error", err)
		return Detail{User: c.Name, Status: StatusFailed, Error: err.Error()}
	}

	if err := s.clients.StampReminderSent(ctx, c.ID, now); err != nil {
		s.logger.Error("falha ao registrar envio do lembrete", "client_id", c.ID, "error", err)
		return Detail{User: c.Name, Status: StatusError, Error: err.Error()}
	}

	return Detail{User: c.Name, Status: StatusSuccess}
}
