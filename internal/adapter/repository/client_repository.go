package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/client"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// Erros específicos do repositório
var ErrClientNotFound = errors.New("cliente não encontrado")

const clientColumns = `id, name, email, whatsapp, birth_date, sleep_schedule,
	purchase_location, establishment_name, reseller_id, last_reminder_sent_at,
	created_at, updated_at`

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO clients (
			id, name, email, whatsapp, birth_date, sleep_schedule,
			purchase_location, establishment_name, reseller_id,
			last_reminder_sent_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Name, c.Email, c.WhatsApp, c.BirthDate, c.SleepSchedule,
		c.PurchaseLocation, c.EstablishmentName, c.ResellerID,
		c.LastReminderSentAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.WhatsApp, &c.BirthDate, &c.SleepSchedule,
		&c.PurchaseLocation, &c.EstablishmentName, &c.ResellerID,
		&c.LastReminderSentAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	c, err := scanClient(r.q(ctx).QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE clients SET
			name = $2, email = $3, whatsapp = $4, birth_date = $5,
			sleep_schedule = $6, purchase_location = $7, establishment_name = $8,
			reseller_id = $9, updated_at = $10
		WHERE id = $1`,
		c.ID, c.Name, c.Email, c.WhatsApp, c.BirthDate, c.SleepSchedule,
		c.PurchaseLocation, c.EstablishmentName, c.ResellerID, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// FindDueForReminder implementa client.Repository.FindDueForReminder
func (r *ClientRepository) FindDueForReminder(ctx context.Context, sleepSchedule string, startOfDay time.Time) ([]*client.Client, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+clientColumns+` FROM clients
		WHERE sleep_schedule = $1
		  AND (last_reminder_sent_at IS NULL OR last_reminder_sent_at < $2)
		ORDER BY created_at`,
		sleepSchedule, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes para lembrete: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// StampReminderSent implementa client.Repository.StampReminderSent
func (r *ClientRepository) StampReminderSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.q(ctx).Exec(ctx,
		`UPDATE clients SET last_reminder_sent_at = $2, updated_at = $2 WHERE id = $1`,
		id, sentAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar envio de lembrete: %w", err)
	}
	return nil
}
