package settings

import "time"

// DefaultKey identifica o registro único de configurações de lembrete
const DefaultKey = "default"

// DefaultMessageTemplate é usado quando nenhum template foi configurado
const DefaultMessageTemplate = "Não esqueça de usar seu Tônico Nutrabene hoje!"

// MediaType representa o tipo de mídia anexada ao lembrete
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeFile  MediaType = "file"
)

// ReminderSettings guarda o template da mensagem diária e a mídia opcional.
// Registro único, chaveado por "default". O template aceita o marcador
// {nome}, substituído pelo primeiro nome do cliente no envio.
type ReminderSettings struct {
	Key             string    `json:"key"`
	MessageTemplate string    `json:"message_template"`
	MediaURL        string    `json:"media_url"`
	MediaType       MediaType `json:"media_type"`
	UpdatedAt       time.Time `json:"updated_at"`
}
