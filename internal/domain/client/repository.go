package client

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// List lista os clientes com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Count conta o total de clientes
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// FindDueForReminder busca os clientes cujo horário de lembrete é o
	// informado e que ainda não foram notificados hoje
	FindDueForReminder(ctx context.Context, sleepSchedule string, startOfDay time.Time) ([]*Client, error)

	// StampReminderSent registra o envio do lembrete
	StampReminderSent(ctx context.Context, id string, sentAt time.Time) error
}
