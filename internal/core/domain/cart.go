package domain

import "github.com/shopspring/decimal"

// Dimensions represents the physical size of an item in centimetres.
type Dimensions struct {
	LengthCm float64 `json:"length_cm" bson:"length_cm"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm"`
	HeightCm float64 `json:"height_cm" bson:"height_cm"`
}

// CartItem is a single cart line as seen by the quoting engine.
// WeightKg is zero when the seller did not declare a mass.
type CartItem struct {
	ID               string
	ProductID        string
	Quantity         int
	Price            decimal.Decimal
	WeightKg         decimal.Decimal
	Dimensions       *Dimensions // optional
	PickupLocationID string
	PickupCoords     *Coordinates // optional
}

// LineValue returns price × quantity.
func (i CartItem) LineValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
