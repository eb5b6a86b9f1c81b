package domain

import "strings"

// CityZonePrefix marks zone codes that belong to the fine-grained city catalog.
const CityZonePrefix = "MKD_"

// IsCityZone reports whether code belongs to the city catalog.
func IsCityZone(code string) bool {
	return strings.HasPrefix(code, CityZonePrefix)
}

// ZoneKind describes how a zone's boundary was authored.
type ZoneKind string

const (
	ZoneKindPolygon          ZoneKind = "polygon"
	ZoneKindCentroidFallback ZoneKind = "centroid-fallback"
)

// TravelProfile classifies the road network inside a zone.
type TravelProfile string

const (
	ProfileUrban     TravelProfile = "urban"
	ProfileInnerCity TravelProfile = "inner_city"
	ProfileSuburban  TravelProfile = "suburban"
	ProfileRural     TravelProfile = "rural"
)

// MinutesPerKm returns the baseline travel time per kilometre for the profile.
// Unrecognised profiles get 3.0.
func (p TravelProfile) MinutesPerKm() float64 {
	switch p {
	case ProfileUrban:
		return 2.5
	case ProfileInnerCity:
		return 3.0
	case ProfileSuburban:
		return 3.5
	case ProfileRural:
		return 5.0
	default:
		return 3.0
	}
}

// ZonePricing holds the zone-specific tariff. Zero fields fall back to global settings.
type ZonePricing struct {
	BaseFee        float64 `json:"base_fee" bson:"base_fee"`
	PerKmRate      float64 `json:"per_km_rate" bson:"per_km_rate"`
	MinFee         float64 `json:"min_fee" bson:"min_fee"`
	MaxFee         float64 `json:"max_fee" bson:"max_fee"`
	FreeDistanceKm float64 `json:"free_distance_km" bson:"free_distance_km"`
}

// HandlingWindow is the declared min/max minutes a seller needs to hand over a parcel.
type HandlingWindow struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// ZoneETA holds the parameters of the ETA model for a zone.
type ZoneETA struct {
	BaseDispatchMinutes float64       `json:"base_dispatch_minutes" bson:"base_dispatch_minutes"`
	TravelProfile       TravelProfile `json:"travel_profile" bson:"travel_profile"`
	CongestionFactor    float64       `json:"congestion_factor" bson:"congestion_factor"`
	// OperationalBufferPercent is a fraction of the raw ETA (0.15 = 15%).
	OperationalBufferPercent float64        `json:"operational_buffer_percent" bson:"operational_buffer_percent"`
	PickupHandlingMinutes    HandlingWindow `json:"pickup_handling_minutes" bson:"pickup_handling_minutes"`
}

// DefaultETAProfile is used when a delivery point resolves to no zone.
func DefaultETAProfile() ZoneETA {
	return ZoneETA{
		BaseDispatchMinutes:      10,
		TravelProfile:            ProfileSuburban,
		CongestionFactor:         0.2,
		OperationalBufferPercent: 0.15,
		PickupHandlingMinutes:    HandlingWindow{Min: 5, Max: 10},
	}
}

// ZoneConfig is a named delivery region with its own pricing and ETA parameters.
type ZoneConfig struct {
	Code                 string         `json:"code" bson:"code"`
	Name                 string         `json:"name" bson:"name"`
	Kind                 ZoneKind       `json:"kind" bson:"kind"`
	Center               Coordinates    `json:"center" bson:"center"`
	RadiusKm             float64        `json:"radius_km" bson:"radius_km"`
	Pricing              ZonePricing    `json:"pricing" bson:"pricing"`
	ETA                  ZoneETA        `json:"eta" bson:"eta"`
	DeliveryTypesAllowed []DeliveryTier `json:"delivery_types_allowed,omitempty" bson:"delivery_types_allowed,omitempty"`
	IsActive             bool           `json:"is_active" bson:"is_active"`
	IsSuspended          bool           `json:"is_suspended" bson:"is_suspended"`
	SuspensionReason     string         `json:"suspension_reason,omitempty" bson:"suspension_reason,omitempty"`
}

// AllowsTier reports whether the zone offers tier. A zone without a declared
// set offers every tier.
func (z *ZoneConfig) AllowsTier(tier DeliveryTier) bool {
	if len(z.DeliveryTypesAllowed) == 0 {
		return true
	}
	for _, allowed := range z.DeliveryTypesAllowed {
		if allowed == tier {
			return true
		}
	}
	return false
}

// ZoneCatalog is the read-only zone data the engine resolves against.
// Catalog order is significant: the first matching zone wins.
type ZoneCatalog struct {
	CityZones     []ZoneConfig
	RegionalZones []ZoneConfig
	// CrossZoneFees is keyed by origin zone code, then destination zone code.
	CrossZoneFees map[string]map[string]int64
	Hubs          map[string]Coordinates
}
