package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitInstallments(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		total  int
		want   []string
	}{
		{"divisão exata", "300.00", 3, []string{"100", "100", "100"}},
		{"resto na última", "100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"parcela única", "59.90", 1, []string{"59.9"}},
		{"centavos", "0.10", 3, []string{"0.03", "0.03", "0.04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := SplitInstallments(decimal.RequireFromString(tt.amount), tt.total)
			require.NoError(t, err)
			require.Len(t, parts, tt.total)

			sum := decimal.Zero
			for i, p := range parts {
				assert.True(t, p.Equal(decimal.RequireFromString(tt.want[i])),
					"parcela %d: esperava %s, veio %s", i+1, tt.want[i], p)
				sum = sum.Add(p)
			}
			assert.True(t, sum.Equal(decimal.RequireFromString(tt.amount)), "soma não reconstrói o valor")
		})
	}
}

func TestSplitInstallmentsInvalid(t *testing.T) {
	_, err := SplitInstallments(decimal.NewFromInt(100), 0)
	assert.ErrorIs(t, err, ErrInvalidInstallments)

	_, err = SplitInstallments(decimal.Zero, 3)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewEntryValidation(t *testing.T) {
	now := time.Now()

	_, err := NewEntry("transfer", "aluguel", decimal.NewFromInt(100), now, now)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewEntry(EntryTypePayable, "", decimal.NewFromInt(100), now, now)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewEntry(EntryTypePayable, "aluguel", decimal.Zero, now, now)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	e, err := NewEntry(EntryTypePayable, "aluguel", decimal.NewFromInt(100), now, now)
	require.NoError(t, err)
	assert.Equal(t, EntryStatusPending, e.Status)
}

func TestNewSaleEntry(t *testing.T) {
	clientID := "client-1"
	saleDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	e, err := NewSaleEntry("sale-id-123456", "sale-id-", &clientID, nil,
		decimal.RequireFromString("270.00"), saleDate, saleDate.AddDate(0, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, EntryTypeReceivable, e.Type)
	assert.Equal(t, "Venda #sale-id-", e.Description)
	assert.Equal(t, SaleCategory, e.Category)
	require.NotNil(t, e.SaleID)
	assert.Equal(t, "sale-id-123456", *e.SaleID)
	assert.Equal(t, &clientID, e.ClientID)
}

func TestBalanceAdjustment(t *testing.T) {
	now := time.Now()

	receivable, err := NewEntry(EntryTypeReceivable, "venda", decimal.NewFromInt(500), now, now)
	require.NoError(t, err)
	assert.True(t, receivable.BalanceAdjustment().Equal(decimal.NewFromInt(500)))

	payable, err := NewEntry(EntryTypePayable, "fornecedor", decimal.NewFromInt(500), now, now)
	require.NoError(t, err)
	assert.True(t, payable.BalanceAdjustment().Equal(decimal.NewFromInt(-500)))
}
