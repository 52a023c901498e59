package controller

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// parseDate interpreta datas no formato AAAA-MM-DD usado pelo painel
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("data inválida, use AAAA-MM-DD")
	}
	return t, nil
}
