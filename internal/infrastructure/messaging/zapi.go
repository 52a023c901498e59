package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/nutrabene/backoffice/pkg/logger"
)

const defaultBaseURL = "https://api.z-api.io"

// Config agrupa as credenciais da instância Z-API
type Config struct {
	BaseURL     string
	InstanceID  string
	Token       string
	ClientToken string
}

// ZAPIClient envia mensagens WhatsApp pela Z-API. As chamadas passam por um
// circuit breaker: depois de falhas consecutivas o circuito abre e os envios
// falham rápido até o gateway se recuperar.
type ZAPIClient struct {
	config  Config
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

// NewZAPIClient cria um novo cliente Z-API
func NewZAPIClient(config Config, log logger.Logger) *ZAPIClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "zapi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker do gateway mudou de estado",
				"name", name, "from", from.String(), "to", to.String())
		},
	})

	return &ZAPIClient{
		config:  config,
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: breaker,
		logger:  log,
	}
}

// SendText envia uma mensagem de texto
func (z *ZAPIClient) SendText(ctx context.Context, phone, message string) error {
	return z.post(ctx, "send-text", map[string]string{
		"phone":   phone,
		"message": message,
	})
}

// SendImage envia uma imagem com legenda
func (z *ZAPIClient) SendImage(ctx context.Context, phone, imageURL, caption string) error {
	return z.post(ctx, "send-image", map[string]string{
		"phone":   phone,
		"image":   imageURL,
		"caption": caption,
	})
}

// SendDocument envia um documento PDF com legenda
func (z *ZAPIClient) SendDocument(ctx context.Context, phone, documentURL, filename, caption string) error {
	return z.post(ctx, "send-document/pdf", map[string]string{
		"phone":    phone,
		"document": documentURL,
		"fileName": filename,
		"caption":  caption,
	})
}

func (z *ZAPIClient) post(ctx context.Context, endpoint string, payload map[string]string) error {
	_, err := z.breaker.Execute(func() (interface{}, error) {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar payload: %w", err)
		}

		url := fmt.Sprintf("%s/instances/%s/token/%s/%s",
			z.config.BaseURL, z.config.InstanceID, z.config.Token, endpoint)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("erro ao montar requisição: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Client-Token", z.config.ClientToken)

		resp, err := z.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao chamar gateway: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("gateway retornou status %d: %s", resp.StatusCode, string(detail))
		}
		return nil, nil
	})
	return err
}
