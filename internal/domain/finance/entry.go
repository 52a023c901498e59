package finance

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription    = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount       = errors.New("valor deve ser maior que zero")
	ErrInvalidType         = errors.New("tipo deve ser receivable ou payable")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrInvalidInstallments = errors.New("número de parcelas inválido")
)

// EntryType representa a direção do lançamento financeiro
type EntryType string

const (
	EntryTypeReceivable EntryType = "receivable" // dinheiro a receber
	EntryTypePayable    EntryType = "payable"    // dinheiro a pagar
)

// IsValid verifica se o tipo é válido
func (t EntryType) IsValid() bool {
	return t == EntryTypeReceivable || t == EntryTypePayable
}

// EntryStatus representa o estado do lançamento.
// "overdue" é apenas um rótulo definido pelo operador; nunca é calculado
// automaticamente a partir da data de vencimento.
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusPaid    EntryStatus = "paid"
	EntryStatusOverdue EntryStatus = "overdue"
)

// IsValid verifica se o status é válido
func (s EntryStatus) IsValid() bool {
	return s == EntryStatusPending || s == EntryStatusPaid || s == EntryStatusOverdue
}

// PaymentMethod representa a forma de pagamento do lançamento
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBankSlip   PaymentMethod = "bank_slip"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

// SaleCategory é a categoria atribuída aos recebíveis gerados por vendas
const SaleCategory = "Venda de Produto"

// Entry representa um lançamento financeiro (conta a receber ou a pagar).
// Uma venda gera exatamente um lançamento, localizado pela chave estrangeira
// sale_id (índice único garante o 1:1).
type Entry struct {
	ID                 string          `json:"id"`
	Type               EntryType       `json:"type"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	EntryDate          time.Time       `json:"entry_date"`
	DueDate            time.Time       `json:"due_date"`
	Status             EntryStatus     `json:"status"`
	Category           string          `json:"category"`
	PaymentMethod      PaymentMethod   `json:"payment_method"`
	BankAccountID      *string         `json:"bank_account_id"`
	CreditCardID       *string         `json:"credit_card_id"`
	InstallmentNumber  int             `json:"installment_number"`  // 0 quando não parcelado
	InstallmentsTotal  int             `json:"installments_total"`  // 0 quando não parcelado
	InstallmentGroupID *string         `json:"installment_group_id"`
	SaleID             *string         `json:"sale_id"`
	ResellerID         *string         `json:"reseller_id"`
	ClientID           *string         `json:"client_id"`
	PaymentDate        *time.Time      `json:"payment_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewEntry cria um novo lançamento financeiro
func NewEntry(entryType EntryType, description string, amount decimal.Decimal, entryDate, dueDate time.Time) (*Entry, error) {
	if !entryType.IsValid() {
		return nil, ErrInvalidType
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	return &Entry{
		ID:          uuid.New().String(),
		Type:        entryType,
		Description: description,
		Amount:      amount,
		EntryDate:   entryDate,
		DueDate:     dueDate,
		Status:      EntryStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewSaleEntry cria o recebível vinculado a uma venda
func NewSaleEntry(saleID, saleShortID string, clientID, resellerID *string, netAmount decimal.Decimal, saleDate, dueDate time.Time) (*Entry, error) {
	e, err := NewEntry(EntryTypeReceivable, fmt.Sprintf("Venda #%s", saleShortID), netAmount, saleDate, dueDate)
	if err != nil {
		return nil, err
	}
	e.Category = SaleCategory
	e.SaleID = &saleID
	e.ClientID = clientID
	e.ResellerID = resellerID
	return e, nil
}

// IsPaid indica se o lançamento está pago
func (e *Entry) IsPaid() bool {
	return e.Status == EntryStatusPaid
}

// BalanceAdjustment retorna o ajuste de saldo aplicado à conta bancária
// quando o lançamento entra no estado pago: positivo para recebíveis,
// negativo para pagáveis
func (e *Entry) BalanceAdjustment() decimal.Decimal {
	if e.Type == EntryTypeReceivable {
		return e.Amount
	}
	return e.Amount.Neg()
}

// SplitInstallments divide amount em total parcelas com arredondamento de
// moeda em 2 casas. Todas as parcelas exceto a última recebem a parte igual
// truncada; a última absorve o resto, de forma que a soma reconstrói o valor
// original exatamente.
func SplitInstallments(amount decimal.Decimal, total int) ([]decimal.Decimal, error) {
	if total < 1 {
		return nil, ErrInvalidInstallments
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	share := amount.Div(decimal.NewFromInt(int64(total))).RoundDown(2)
	parts := make([]decimal.Decimal, total)
	accumulated := decimal.Zero
	for i := 0; i < total-1; i++ {
		parts[i] = share
		accumulated = accumulated.Add(share)
	}
	parts[total-1] = amount.Sub(accumulated)
	return parts, nil
}
