package booking

import (
	"guri24/internal/domain/money"

	"github.com/google/uuid"
)

type PriceContext struct {
	PropertyID  uuid.UUID
	NightlyRate money.Money
}

type PriceCalculator interface {
	CalculatePrice(ctx PriceContext, stay Stay) (money.Money, error)
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculatePrice(ctx PriceContext, stay Stay) (money.Money, error) {
	total, err := ctx.NightlyRate.Times(stay.Nights())
	if err != nil {
		return money.Money{}, ErrPriceOutOfRange
	}
	return total, nil
}
