package pricing

import "github.com/99minutos/delivery-quote/internal/core/domain"

// TierMultiplier returns the price multiplier for tier. An operator override in
// settings wins; otherwise the city or regional table applies. Unknown tiers
// are priced at 1.0.
func TierMultiplier(tier domain.DeliveryTier, isCity bool, s domain.GlobalSettings) float64 {
	if m, ok := s.DeliveryTypeMultipliers[tier]; ok && m > 0 {
		return m
	}
	if isCity {
		return cityMultiplier(tier)
	}
	return regionalMultiplier(tier)
}

func cityMultiplier(tier domain.DeliveryTier) float64 {
	switch tier {
	case domain.TierExpress:
		return 1.3
	case domain.TierSameDay:
		return 1.5
	default:
		return 1.0
	}
}

func regionalMultiplier(tier domain.DeliveryTier) float64 {
	switch tier {
	case domain.TierExpress:
		return 1.5
	case domain.TierSameDay:
		return 2.0
	default:
		return 1.0
	}
}
