package pricing

import "github.com/99minutos/delivery-quote/internal/core/domain"

// Params is the tariff in force for one delivery point.
type Params struct {
	BaseFee        float64
	PerKmRate      float64
	FreeDistanceKm float64
	MinFee         float64
	MaxFee         float64
	// ZoneCode is empty when global settings were applied wholesale.
	ZoneCode string
}

// ResolveParams builds the tariff for zone. Each zone field falls back to the
// matching global setting and then to the hardcoded default when unset. A nil
// zone uses the global settings wholesale.
func ResolveParams(zone *domain.ZoneConfig, s domain.GlobalSettings) Params {
	d := domain.DefaultSettings()

	if zone == nil {
		return Params{
			BaseFee:        ResolveAmount(0, s.BaseFeeNgn, d.BaseFeeNgn),
			PerKmRate:      ResolveAmount(0, s.PerKmRateNgn, d.PerKmRateNgn),
			FreeDistanceKm: ResolveAmount(0, s.FreeDistanceKm, d.FreeDistanceKm),
			MinFee:         domain.DefaultMinFeeNgn,
			MaxFee:         domain.DefaultMaxFeeNgn,
		}
	}

	p := zone.Pricing
	return Params{
		BaseFee:        ResolveAmount(p.BaseFee, s.BaseFeeNgn, d.BaseFeeNgn),
		PerKmRate:      ResolveAmount(p.PerKmRate, s.PerKmRateNgn, d.PerKmRateNgn),
		FreeDistanceKm: ResolveAmount(p.FreeDistanceKm, s.FreeDistanceKm, d.FreeDistanceKm),
		MinFee:         ResolveAmount(p.MinFee, 0, domain.DefaultMinFeeNgn),
		MaxFee:         ResolveAmount(p.MaxFee, 0, domain.DefaultMaxFeeNgn),
		ZoneCode:       zone.Code,
	}
}

// ResolveAmount returns the zone value if set, else the global value if set,
// else the literal default. Zero and negative values count as unset.
func ResolveAmount(zoneValue, globalValue, literal float64) float64 {
	switch {
	case zoneValue > 0:
		return zoneValue
	case globalValue > 0:
		return globalValue
	default:
		return literal
	}
}
