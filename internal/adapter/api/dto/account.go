package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/internal/domain/card"
)

// BankAccountRequest representa criação/edição de conta bancária
type BankAccountRequest struct {
	Name    string          `json:"name" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// BankAccountResponse representa uma conta bancária na resposta
type BankAccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToBankAccountResponse converte a entidade para o DTO de resposta
func ToBankAccountResponse(a *account.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToBankAccountResponseList converte uma lista de entidades
func ToBankAccountResponseList(accounts []*account.BankAccount) []BankAccountResponse {
	out := make([]BankAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToBankAccountResponse(a))
	}
	return out
}

// CreditCardRequest representa criação/edição de cartão de crédito
type CreditCardRequest struct {
	Name       string          `json:"name" binding:"required"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int             `json:"due_day" binding:"required,min=1,max=31"`
}

// CreditCardResponse representa um cartão de crédito na resposta
type CreditCardResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Limit          decimal.Decimal `json:"limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	ClosingDay     int             `json:"closing_day"`
	DueDay         int             `json:"due_day"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCreditCardResponse converte a entidade para o DTO de resposta
func ToCreditCardResponse(c *card.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:             c.ID,
		Name:           c.Name,
		Limit:          c.Limit,
		CurrentBalance: c.CurrentBalance,
		ClosingDay:     c.ClosingDay,
		DueDay:         c.DueDay,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCreditCardResponseList converte uma lista de entidades
func ToCreditCardResponseList(cards []*card.CreditCard) []CreditCardResponse {
	out := make([]CreditCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, ToCreditCardResponse(c))
	}
	return out
}
