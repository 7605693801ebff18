package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/phenrril/vishwakarma/internal/domain"
)

// Estimate es base × madera × acabado, sin redondeo (a diferencia del catálogo).
func Estimate(t domain.BuildType, wood, finish domain.BuildOption) decimal.Decimal {
	return decimal.NewFromInt(t.BasePrice).Mul(wood.PriceMultiplier).Mul(finish.PriceMultiplier)
}
