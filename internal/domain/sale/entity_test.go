package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleDerivesTotals(t *testing.T) {
	saleDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dueDate := saleDate.AddDate(0, 1, 0)

	s, err := NewSale("prod-1", nil, nil, 3,
		decimal.RequireFromString("100.00"), decimal.RequireFromString("10"), saleDate, dueDate)
	require.NoError(t, err)

	assert.True(t, s.TotalPrice.Equal(decimal.RequireFromString("300.00")), "total: %s", s.TotalPrice)
	assert.True(t, s.DiscountAmount.Equal(decimal.RequireFromString("30.00")), "desconto: %s", s.DiscountAmount)
	assert.True(t, s.NetAmount.Equal(decimal.RequireFromString("270.00")), "líquido: %s", s.NetAmount)
	assert.Equal(t, PaymentStatusPending, s.PaymentStatus)
}

func TestNewSaleValidation(t *testing.T) {
	now := time.Now()

	_, err := NewSale("prod-1", nil, nil, 0, decimal.NewFromInt(10), decimal.Zero, now, now)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSale("prod-1", nil, nil, 1, decimal.NewFromInt(-1), decimal.Zero, now, now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewSale("prod-1", nil, nil, 1, decimal.NewFromInt(10), decimal.NewFromInt(101), now, now)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestRecalculateTotalsRoundsDiscount(t *testing.T) {
	s, err := NewSale("prod-1", nil, nil, 1,
		decimal.RequireFromString("99.99"), decimal.RequireFromString("33.33"), time.Now(), time.Now())
	require.NoError(t, err)

	// 99.99 * 33.33% = 33.326667 → 33.33
	assert.True(t, s.DiscountAmount.Equal(decimal.RequireFromString("33.33")), "desconto: %s", s.DiscountAmount)
	assert.True(t, s.NetAmount.Equal(decimal.RequireFromString("66.66")), "líquido: %s", s.NetAmount)

	s.Quantity = 2
	s.RecalculateTotals()
	assert.True(t, s.TotalPrice.Equal(decimal.RequireFromString("199.98")))
}

func TestShortID(t *testing.T) {
	s, err := NewSale("prod-1", nil, nil, 1, decimal.NewFromInt(10), decimal.Zero, time.Now(), time.Now())
	require.NoError(t, err)

	assert.Len(t, s.ShortID(), 8)
	assert.Equal(t, s.ID[:8], s.ShortID())
}
