package domain

import "time"

// BreakdownCode identifies the kind of a ledger line.
type BreakdownCode string

const (
	LineBase      BreakdownCode = "base"
	LineDistance  BreakdownCode = "distance"
	LineWeight    BreakdownCode = "weight"
	LineCrossZone BreakdownCode = "cross_zone"
	LineTier      BreakdownCode = "tier"
	LineInsurance BreakdownCode = "insurance"
	LineCOD       BreakdownCode = "cod"
	LinePlatform  BreakdownCode = "platform"
)

var ledgerOrder = []BreakdownCode{
	LineBase, LineDistance, LineWeight, LineCrossZone, LineTier, LineInsurance, LineCOD, LinePlatform,
}

// Rank is the canonical ledger position of the line kind.
func (c BreakdownCode) Rank() int {
	for i, code := range ledgerOrder {
		if code == c {
			return i
		}
	}
	return len(ledgerOrder)
}

// PriceBreakdownItem is one ledger line shown verbatim to the customer.
type PriceBreakdownItem struct {
	Code      BreakdownCode `bson:"code"`
	Label     string        `bson:"label"`
	AmountNgn int64         `bson:"amount_ngn"`
}

// ETAWindow is an estimated arrival range in minutes.
type ETAWindow struct {
	Min      int    `bson:"min"`
	Max      int    `bson:"max"`
	Friendly string `bson:"friendly"`
}

// ShipmentFee is the priced leg for one pickup location.
type ShipmentFee struct {
	PickupLocationID string               `bson:"pickup_location_id"`
	PickupZoneCode   string               `bson:"pickup_zone_code,omitempty"`
	DistanceKm       float64              `bson:"distance_km"`
	WeightKg         float64              `bson:"weight_kg"`
	PackageValueNgn  float64              `bson:"package_value_ngn"`
	FeeNgn           int64                `bson:"fee_ngn"`
	Breakdown        []PriceBreakdownItem `bson:"breakdown"`
	AppliedRules     []string             `bson:"applied_rules"`
	ETA              ETAWindow            `bson:"eta"`
}

// DeliveryOption is one tier offer in a quote.
type DeliveryOption struct {
	ID               DeliveryTier         `bson:"id"`
	Label            string               `bson:"label"`
	PriceNgn         int64                `bson:"price_ngn"`
	PriceBreakdown   []PriceBreakdownItem `bson:"price_breakdown"`
	ETA              ETAWindow            `bson:"eta"`
	AppliedRules     []string             `bson:"applied_rules"`
	Tags             []string             `bson:"tags"`
	IsAvailable      bool                 `bson:"is_available"`
	SuspensionReason string               `bson:"suspension_reason,omitempty"`
}

// FallbackInfo is attached to a quote produced by the degraded path.
type FallbackInfo struct {
	Reason string `bson:"reason"`
	Error  string `bson:"error"`
}

// Quote is the full answer to a quote request.
type Quote struct {
	ID                string
	CartID            string
	Currency          string
	DeliveryZoneCode  string
	EffectiveWeightKg float64
	DistanceKm        float64
	DeliveryOptions   []DeliveryOption
	// PerShipmentFees is only populated when the cart has more than one pickup group.
	PerShipmentFees []ShipmentFee
	GrandTotalNgn   int64
	GeneratedAt     time.Time
	Fallback        *FallbackInfo // nil unless degraded
}

// QuoteAudit is the record written to the audit trail for every quote served.
type QuoteAudit struct {
	ID               string           `bson:"_id"`
	QuoteID          string           `bson:"quote_id"`
	CartID           string           `bson:"cart_id"`
	DeliveryType     DeliveryTier     `bson:"delivery_type"`
	PaymentMethod    PaymentMethod    `bson:"payment_method"`
	DeliveryCoords   Coordinates      `bson:"delivery_coords"`
	DeliveryZoneCode string           `bson:"delivery_zone_code,omitempty"`
	SubtotalNgn      string           `bson:"subtotal_ngn"`
	ItemCount        int              `bson:"item_count"`
	GrandTotalNgn    int64            `bson:"grand_total_ngn"`
	Options          []DeliveryOption `bson:"options"`
	PerShipmentFees  []ShipmentFee    `bson:"per_shipment_fees,omitempty"`
	Fallback         *FallbackInfo    `bson:"fallback,omitempty"`
	RequestedAt      time.Time        `bson:"requested_at"`
	CreatedAt        time.Time        `bson:"created_at"`
}
