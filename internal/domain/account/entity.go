package account

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")

	// ErrNoAccounts indica que não há nenhuma conta bancária cadastrada
	ErrNoAccounts = errors.New("nenhuma conta bancária cadastrada")
)

// BankAccount representa uma conta bancária com saldo corrente.
// O saldo só é alterado quando um lançamento financeiro entra ou sai do
// estado "pago": crédito para recebíveis, débito para pagáveis, e o inverso
// na reversão.
type BankAccount struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewBankAccount cria uma nova conta bancária
func NewBankAccount(name string, initialBalance decimal.Decimal) (*BankAccount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &BankAccount{
		ID:        uuid.New().String(),
		Name:      name,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
