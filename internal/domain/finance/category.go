package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCategoryType = errors.New("tipo de categoria deve ser income ou expense")

// CategoryType representa a direção de uma categoria financeira
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid verifica se o tipo de categoria é válido
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category classifica lançamentos financeiros
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewCategory cria uma nova categoria financeira
func NewCategory(name string, categoryType CategoryType) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyDescription
	}
	if !categoryType.IsValid() {
		return nil, ErrInvalidCategoryType
	}

	now := time.Now()
	return &Category{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
