package domain

// Hardcoded floors used when neither a zone nor the global settings provide a value.
const (
	DefaultMinFeeNgn         = 300
	DefaultMaxFeeNgn         = 10000
	DefaultCrossZoneFeeNgn   = 500
	FreeShippingThresholdNgn = 50000
	FallbackFeeNgn           = 2500
)

// GlobalSettings are the operator-tunable pricing defaults.
type GlobalSettings struct {
	FreeDistanceKm            float64 `json:"free_distance_km" bson:"free_distance_km"`
	PerKmRateNgn              float64 `json:"per_km_rate_ngn" bson:"per_km_rate_ngn"`
	BaseFeeNgn                float64 `json:"base_fee_ngn" bson:"base_fee_ngn"`
	WeightFreeLimitKg         float64 `json:"weight_free_limit_kg" bson:"weight_free_limit_kg"`
	WeightSurchargePerKg      float64 `json:"weight_surcharge_per_kg" bson:"weight_surcharge_per_kg"`
	PlatformCommissionPercent float64 `json:"platform_commission_percent" bson:"platform_commission_percent"`
	InsuranceThresholdNgn     float64 `json:"insurance_threshold_ngn" bson:"insurance_threshold_ngn"`
	InsuranceRatePercent      float64 `json:"insurance_rate_percent" bson:"insurance_rate_percent"`
	CODSurchargePercent       float64 `json:"cod_surcharge_percent" bson:"cod_surcharge_percent"`
	DefaultCrossZoneFee       int64   `json:"default_cross_zone_fee" bson:"default_cross_zone_fee"`
	// DeliveryTypeMultipliers overrides the built-in tier multiplier tables.
	DeliveryTypeMultipliers map[DeliveryTier]float64 `json:"delivery_type_multipliers,omitempty" bson:"delivery_type_multipliers,omitempty"`
}

// DefaultSettings is served when the settings store has never answered.
func DefaultSettings() GlobalSettings {
	return GlobalSettings{
		FreeDistanceKm:            0,
		PerKmRateNgn:              100,
		BaseFeeNgn:                500,
		WeightFreeLimitKg:         5,
		WeightSurchargePerKg:      100,
		PlatformCommissionPercent: 15,
		InsuranceThresholdNgn:     50000,
		InsuranceRatePercent:      1,
		CODSurchargePercent:       2,
		DefaultCrossZoneFee:       DefaultCrossZoneFeeNgn,
	}
}
