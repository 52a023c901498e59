package reseller

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName             = errors.New("nome não pode ser vazio")
	ErrInvalidCommissionRate = errors.New("taxa de comissão deve estar entre 0 e 100")
)

// Reseller representa um revendedor parceiro. A taxa de comissão é aplicada
// como desconto percentual sobre o valor bruto das vendas atribuídas a ele.
type Reseller struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	WhatsApp       string          `json:"whatsapp"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // percentual, 0-100
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewReseller cria um novo revendedor
func NewReseller(name, email, whatsapp string, commissionRate decimal.Decimal) (*Reseller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidCommissionRate
	}

	now := time.Now()
	return &Reseller{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          strings.ToLower(strings.TrimSpace(email)),
		WhatsApp:       whatsapp,
		CommissionRate: commissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
