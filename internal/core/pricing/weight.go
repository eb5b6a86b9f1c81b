// Package pricing composes delivery fees from zone tariffs and global settings.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

var volumetricDivisor = decimal.NewFromInt(5000)

// EffectiveWeight returns the billable weight of items in kilograms: the greater
// of declared mass and volumetric mass, rounded to 3 decimals. Items without a
// mass or dimensions contribute nothing to the respective sum.
func EffectiveWeight(items []domain.CartItem) float64 {
	gross := decimal.Zero
	volumetric := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		if item.WeightKg.IsPositive() {
			gross = gross.Add(item.WeightKg.Mul(qty))
		}
		if d := item.Dimensions; d != nil {
			volume := decimal.NewFromFloat(d.LengthCm).
				Mul(decimal.NewFromFloat(d.WidthCm)).
				Mul(decimal.NewFromFloat(d.HeightCm))
			if volume.IsPositive() {
				volumetric = volumetric.Add(volume.Div(volumetricDivisor).Mul(qty))
			}
		}
	}

	return decimal.Max(gross, volumetric).Round(3).InexactFloat64()
}

// PackageValue returns the declared value of items (price × quantity).
func PackageValue(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineValue())
	}
	return total
}
