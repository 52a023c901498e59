package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/finance"
)

// EntryRequest representa criação de lançamento financeiro
type EntryRequest struct {
	Type              string          `json:"type" binding:"required,oneof=receivable payable"`
	Description       string          `json:"description" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	EntryDate         string          `json:"entry_date" binding:"required" example:"2025-03-10"`
	DueDate           string          `json:"due_date" binding:"required" example:"2025-04-10"`
	Status            string          `json:"status" binding:"omitempty,oneof=pending paid overdue"`
	Category          string          `json:"category"`
	PaymentMethod     string          `json:"payment_method" binding:"omitempty,oneof=cash pix bank_slip credit_card"`
	BankAccountID     *string         `json:"bank_account_id"`
	CreditCardID      *string         `json:"credit_card_id"`
	InstallmentsTotal int             `json:"installments_total" binding:"omitempty,min=1,max=24"`
}

// EntryUpdateRequest representa edição de lançamento financeiro. A transição
// de status paid↔pending é resolvida pelo ledger; os demais campos são
// atualização simples.
type EntryUpdateRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	EntryDate     string          `json:"entry_date" binding:"required"`
	DueDate       string          `json:"due_date" binding:"required"`
	Status        string          `json:"status" binding:"required,oneof=pending paid overdue"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,oneof=cash pix bank_slip credit_card"`
	BankAccountID *string         `json:"bank_account_id"`
}

// EntryResponse representa um lançamento financeiro na resposta
type EntryResponse struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	EntryDate          string          `json:"entry_date"`
	DueDate            string          `json:"due_date"`
	Status             string          `json:"status"`
	Category           string          `json:"category"`
	PaymentMethod      string          `json:"payment_method"`
	BankAccountID      *string         `json:"bank_account_id"`
	CreditCardID       *string         `json:"credit_card_id"`
	InstallmentNumber  int             `json:"installment_number,omitempty"`
	InstallmentsTotal  int             `json:"installments_total,omitempty"`
	InstallmentGroupID *string         `json:"installment_group_id"`
	SaleID             *string         `json:"sale_id"`
	ResellerID         *string         `json:"reseller_id"`
	ClientID           *string         `json:"client_id"`
	PaymentDate        *string         `json:"payment_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToEntryResponse converte a entidade para o DTO de resposta
func ToEntryResponse(e *finance.Entry) EntryResponse {
	var paymentDate *string
	if e.PaymentDate != nil {
		s := e.PaymentDate.Format("2006-01-02")
		paymentDate = &s
	}
	return EntryResponse{
		ID:                 e.ID,
		Type:               string(e.Type),
		Description:        e.Description,
		Amount:             e.Amount,
		EntryDate:          e.EntryDate.Format("2006-01-02"),
		DueDate:            e.DueDate.Format("2006-01-02"),
		Status:             string(e.Status),
		Category:           e.Category,
		PaymentMethod:      string(e.PaymentMethod),
		BankAccountID:      e.BankAccountID,
		CreditCardID:       e.CreditCardID,
		InstallmentNumber:  e.InstallmentNumber,
		InstallmentsTotal:  e.InstallmentsTotal,
		InstallmentGroupID: e.InstallmentGroupID,
		SaleID:             e.SaleID,
		ResellerID:         e.ResellerID,
		ClientID:           e.ClientID,
		PaymentDate:        paymentDate,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// ToEntryResponseList converte uma lista de entidades
func ToEntryResponseList(entries []*finance.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

// CategoryRequest representa criação/edição de categoria financeira
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

// CategoryResponse representa uma categoria financeira na resposta
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converte a entidade para o DTO de resposta
func ToCategoryResponse(c *finance.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponseList converte uma lista de entidades
func ToCategoryResponseList(categories []*finance.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
