package card

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrInvalidDueDay   = errors.New("dia de vencimento deve estar entre 1 e 31")
	ErrInvalidCloseDay = errors.New("dia de fechamento deve estar entre 1 e 31")
)

// CreditCard representa um cartão de crédito da empresa. O saldo corrente é
// incrementado pelo valor cheio (antes do parcelamento) quando um lançamento
// pagável é criado com forma de pagamento cartão de crédito.
type CreditCard struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Limit          decimal.Decimal `json:"limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	ClosingDay     int             `json:"closing_day"`
	DueDay         int             `json:"due_day"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCreditCard cria um novo cartão de crédito
func NewCreditCard(name string, limit decimal.Decimal, closingDay, dueDay int) (*CreditCard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if closingDay < 1 || closingDay > 31 {
		return nil, ErrInvalidCloseDay
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, ErrInvalidDueDay
	}

	now := time.Now()
	return &CreditCard{
		ID:             uuid.New().String(),
		Name:           name,
		Limit:          limit,
		CurrentBalance: decimal.Zero,
		ClosingDay:     closingDay,
		DueDay:         dueDay,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
