package settings

import "context"

// Repository define a interface para operações de repositório de configurações
type Repository interface {
	// Get busca o registro de configurações pelo key
	Get(ctx context.Context, key string) (*ReminderSettings, error)

	// UpdateTemplate atualiza o template da mensagem
	UpdateTemplate(ctx context.Context, key, template string) error

	// UpdateMedia atualiza a mídia anexada ao lembrete
	UpdateMedia(ctx context.Context, key, mediaURL string, mediaType MediaType) error
}
