package currency

import (
	"context"
	"fmt"
	"math"
)

// number of decimals a money amount gets rounded to.
const moneyDecimals = 2

//go:generate mockery --name RatioSource --filename ratiosource.go

// RatioSource provides exchange ratios from the default currency.
type RatioSource interface {
	// Ratio returns the exchange ratio from the default currency to provided currency.
	Ratio(ctx context.Context, currency string) (float64, error)
}

// Converter converts amounts between the seller's default currency and
// the marketplace currency.
type Converter struct {
	source RatioSource
}

// NewConverter returns new Converter using provided ratio source.
func NewConverter(source RatioSource) Converter {
	return Converter{
		source: source,
	}
}

// Convert converts amount from one currency to another and rounds the result
// to two decimals, half away from zero. When both currencies are equal the
// amount is returned unchanged. Callers must always convert from the canonical
// default-currency amount, never from an already-converted one.
func (c Converter) Convert(ctx context.Context, amount float64, from string, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	ratio, err := c.source.Ratio(ctx, to)
	if err != nil {
		return 0, fmt.Errorf("can't get exchange ratio for %q: %w", to, err)
	}

	return roundMoney(amount * ratio), nil
}

func roundMoney(amount float64) float64 {
	shift := math.Pow10(moneyDecimals)
	return math.Round(amount*shift) / shift
}
