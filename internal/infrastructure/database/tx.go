package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier é o subconjunto de pgx usado pelos repositórios. É satisfeito
// tanto pelo pool quanto por uma transação, permitindo que as operações do
// ledger executem vários repositórios dentro de uma única transação.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// WithQuerier retorna um contexto carregando o querier transacional
func WithQuerier(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, txKey{}, q)
}

// QuerierFromContext retorna o querier transacional do contexto, ou o
// fallback (normalmente o pool) quando não há transação ativa
func QuerierFromContext(ctx context.Context, fallback Querier) Querier {
	if q, ok := ctx.Value(txKey{}).(Querier); ok {
		return q
	}
	return fallback
}

// TxManager executa funções dentro de uma transação
type TxManager interface {
	// WithinTransaction abre uma transação, injeta-a no contexto e executa
	// fn. Commit quando fn retorna nil; rollback caso contrário.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PgxTxManager implementa TxManager sobre um pool pgx
type PgxTxManager struct {
	pool *pgxpool.Pool
}

// NewPgxTxManager cria um novo PgxTxManager
func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithinTransaction implementa TxManager.WithinTransaction
func (m *PgxTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// transação já ativa: reaproveita
	if _, ok := ctx.Value(txKey{}).(Querier); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	if err := fn(WithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}
