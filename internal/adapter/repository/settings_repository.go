package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/settings"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrSettingsNotFound é retornado quando o registro de configurações não existe
var ErrSettingsNotFound = errors.New("configurações de lembrete não encontradas")

// SettingsRepository implementa a interface settings.Repository
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context, key string) (*settings.ReminderSettings, error) {
	var s settings.ReminderSettings
	err := r.q(ctx).QueryRow(ctx,
		`SELECT key, message_template, media_url, media_type, updated_at
		FROM reminder_settings WHERE key = $1`, key).
		Scan(&s.Key, &s.MessageTemplate, &s.MediaURL, &s.MediaType, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("erro ao buscar configurações de lembrete: %w", err)
	}
	return &s, nil
}

// UpdateTemplate implementa settings.Repository.UpdateTemplate.
// Cria o registro quando ainda não existe.
func (r *SettingsRepository) UpdateTemplate(ctx context.Context, key, template string) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO reminder_settings (key, message_template, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET message_template = $2, updated_at = $3`,
		key, template, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar template do lembrete: %w", err)
	}
	return nil
}

// UpdateMedia implementa settings.Repository.UpdateMedia
func (r *SettingsRepository) UpdateMedia(ctx context.Context, key, mediaURL string, mediaType settings.MediaType) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO reminder_settings (key, message_template, media_url, media_type, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET media_url = $3, media_type = $4, updated_at = $5`,
		key, settings.DefaultMessageTemplate, mediaURL, mediaType, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar mídia do lembrete: %w", err)
	}
	return nil
}
