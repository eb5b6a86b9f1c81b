package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type coordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type dimensionsRequest struct {
	LengthCm float64 `json:"length_cm" validate:"gte=0"`
	WidthCm  float64 `json:"width_cm"  validate:"gte=0"`
	HeightCm float64 `json:"height_cm" validate:"gte=0"`
}

type cartItemRequest struct {
	ID               string              `json:"id"                 validate:"required"`
	ProductID        string              `json:"product_id"`
	Quantity         int                 `json:"quantity"           validate:"required,gt=0"`
	Price            decimal.Decimal     `json:"price"              validate:"gte=0"`
	WeightKg         *decimal.Decimal    `json:"weight_kg"          validate:"omitempty,gte=0"`
	Dimensions       *dimensionsRequest  `json:"dimensions"         validate:"omitempty"`
	PickupLocationID string              `json:"pickup_location_id"`
	PickupCoords     *coordinatesRequest `json:"pickup_coords"      validate:"omitempty"`
}

type quoteRequest struct {
	CartID         string              `json:"cart_id"         validate:"required"`
	SubtotalNgn    decimal.Decimal     `json:"subtotal_ngn"    validate:"gte=0"`
	Items          []cartItemRequest   `json:"items"           validate:"dive"`
	PaymentMethod  string              `json:"payment_method"  validate:"omitempty,oneof=card bank_transfer cod mobile_money"`
	PickupCoords   *coordinatesRequest `json:"pickup_coords"   validate:"omitempty"`
	DeliveryCoords *coordinatesRequest `json:"delivery_coords" validate:"required"`
	DeliveryType   string              `json:"delivery_type"   validate:"omitempty,oneof=standard express same_day scheduled"`
	RequestedAt    *time.Time          `json:"requested_at"`
	StoreHubID     string              `json:"store_hub_id"`
}

type resolveZoneQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lng float64 `validate:"gte=-180,lte=180"`
}

// --- Response types ---

type breakdownItemResponse struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	AmountNgn int64  `json:"amount_ngn"`
}

type etaMinutesResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type deliveryOptionResponse struct {
	ID                  string                  `json:"id"`
	Label               string                  `json:"label"`
	PriceNgn            int64                   `json:"price_ngn"`
	PriceBreakdown      []breakdownItemResponse `json:"price_breakdown"`
	EstimatedEtaMinutes etaMinutesResponse      `json:"estimated_eta_minutes"`
	EtaFriendly         string                  `json:"eta_friendly"`
	AppliedRules        []string                `json:"applied_rules"`
	Tags                []string                `json:"tags"`
	IsAvailable         bool                    `json:"is_available"`
	SuspensionReason    string                  `json:"suspension_reason,omitempty"`
}

type shipmentFeeResponse struct {
	PickupLocationID    string                  `json:"pickup_location_id"`
	PickupZone          string                  `json:"pickup_zone,omitempty"`
	DistanceKm          float64                 `json:"distance_km"`
	WeightKg            float64                 `json:"weight_kg"`
	FeeNgn              int64                   `json:"fee_ngn"`
	PriceBreakdown      []breakdownItemResponse `json:"price_breakdown"`
	AppliedRules        []string                `json:"applied_rules"`
	EstimatedEtaMinutes etaMinutesResponse      `json:"estimated_eta_minutes"`
	EtaFriendly         string                  `json:"eta_friendly"`
}

type fallbackResponse struct {
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

type quoteResponse struct {
	QuoteID           string                   `json:"quote_id"`
	CartID            string                   `json:"cart_id"`
	Currency          string                   `json:"currency"`
	DeliveryZone      string                   `json:"delivery_zone,omitempty"`
	EffectiveWeightKg float64                  `json:"effective_weight_kg"`
	DistanceKm        float64                  `json:"distance_km"`
	DeliveryOptions   []deliveryOptionResponse `json:"delivery_options"`
	PerShipmentFees   []shipmentFeeResponse    `json:"per_shipment_fees,omitempty"`
	GrandTotalNgn     int64                    `json:"grand_total_ngn"`
	GeneratedAt       time.Time                `json:"generated_at"`
	Fallback          *fallbackResponse        `json:"fallback,omitempty"`
}

type zoneResponse struct {
	Code                 string   `json:"code"`
	Name                 string   `json:"name"`
	Kind                 string   `json:"kind"`
	IsCity               bool     `json:"is_city"`
	IsSuspended          bool     `json:"is_suspended"`
	SuspensionReason     string   `json:"suspension_reason,omitempty"`
	DeliveryTypesAllowed []string `json:"delivery_types_allowed,omitempty"`
}

type resolveZoneResponse struct {
	Matched bool          `json:"matched"`
	Catalog string        `json:"catalog"`
	Zone    *zoneResponse `json:"zone,omitempty"`
}
