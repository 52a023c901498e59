package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrNegativePrice   = errors.New("preço unitário não pode ser negativo")
	ErrInvalidDiscount = errors.New("desconto deve estar entre 0 e 100")
)

// PaymentStatus representa o estado de pagamento da venda
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Sale representa uma venda de produto. Os totais são derivados no momento
// da criação e mantidos pelas operações do ledger:
//
//	total_price    = unit_price × quantity
//	discount_amount = round(total_price × discount_percentage / 100, 2)
//	net_amount     = total_price − discount_amount
type Sale struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"product_id"`
	ClientID           *string         `json:"client_id"`
	ResellerID         *string         `json:"reseller_id"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	SaleDate           time.Time       `json:"sale_date"`
	DueDate            time.Time       `json:"due_date"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewSale cria uma nova venda com os totais derivados
func NewSale(productID string, clientID, resellerID *string, quantity int, unitPrice, discountPercentage decimal.Decimal, saleDate, dueDate time.Time) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidDiscount
	}

	now := time.Now()
	s := &Sale{
		ID:                 uuid.New().String(),
		ProductID:          productID,
		ClientID:           clientID,
		ResellerID:         resellerID,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		DiscountPercentage: discountPercentage,
		SaleDate:           saleDate,
		DueDate:            dueDate,
		PaymentStatus:      PaymentStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.RecalculateTotals()
	return s, nil
}

// RecalculateTotals recomputa total, desconto e líquido a partir de
// quantidade, preço unitário e percentual de desconto
func (s *Sale) RecalculateTotals() {
	s.TotalPrice = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
	s.DiscountAmount = s.TotalPrice.Mul(s.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
	s.NetAmount = s.TotalPrice.Sub(s.DiscountAmount)
}

// ShortID retorna o identificador truncado usado nas descrições de lançamentos
func (s *Sale) ShortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}
