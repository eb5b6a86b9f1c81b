package pricing

import (
	"math"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/geo"
)

// Applied-rule tags recorded on a composed fee.
const (
	RuleRegionalFallback = "benue_fallback"
	RuleDistanceFee      = "distance_fee"
	RuleWeightSurcharge  = "weight_surcharge"
	RuleCrossZoneFee     = "cross_zone_fee"
	RuleInsurance        = "insurance"
	RuleCODSurcharge     = "cod_surcharge"
	RulePlatformFee      = "platform_fee"
	RuleMinFeeApplied    = "min_fee_applied"
	RuleMaxFeeApplied    = "max_fee_applied"
)

// ZoneResolver maps a coordinate to the zone that contains it.
type ZoneResolver interface {
	Resolve(c domain.Coordinates) (*domain.ZoneConfig, bool)
}

// CrossZoneFees prices a trip between two different zones.
type CrossZoneFees interface {
	Fee(fromCode, toCode string) int64
}

// Composer builds the fee ledger for a single shipment.
type Composer struct {
	zones     ZoneResolver
	crossZone CrossZoneFees
}

// NewComposer creates a Composer backed by the given zone lookups.
func NewComposer(zones ZoneResolver, crossZone CrossZoneFees) *Composer {
	return &Composer{zones: zones, crossZone: crossZone}
}

// FeeInput describes one shipment to price.
type FeeInput struct {
	Pickup   domain.Coordinates
	Delivery domain.Coordinates
	// DistanceKm overrides the pickup→delivery distance when set.
	DistanceKm        *float64
	EffectiveWeightKg float64
	PackageValueNgn   float64
	Tier              domain.DeliveryTier
	PaymentMethod     domain.PaymentMethod
	IsCityDelivery    bool
	Settings          domain.GlobalSettings
}

// FeeResult is a composed fee. Total is rounded after clamping and need not
// equal the sum of the individually rounded breakdown lines.
type FeeResult struct {
	Breakdown    []domain.PriceBreakdownItem
	Total        int64
	RawTotal     float64
	AppliedRules []string
	DeliveryZone *domain.ZoneConfig
	PickupZone   *domain.ZoneConfig
	DistanceKm   float64
	Params       Params
}

// Compose prices one shipment. The ledger is always ordered base, distance,
// weight, cross-zone, tier, insurance, COD, platform; optional lines are left
// out when their trigger does not hold.
func (c *Composer) Compose(in FeeInput) FeeResult {
	s := in.Settings
	res := FeeResult{}

	deliveryZone, hasDeliveryZone := c.zones.Resolve(in.Delivery)
	if hasDeliveryZone {
		res.DeliveryZone = deliveryZone
		res.Params = ResolveParams(deliveryZone, s)
		res.AppliedRules = append(res.AppliedRules, "zone_"+deliveryZone.Code+"_base")
	} else {
		res.Params = ResolveParams(nil, s)
		res.AppliedRules = append(res.AppliedRules, RuleRegionalFallback)
	}
	params := res.Params

	if in.DistanceKm != nil {
		res.DistanceKm = *in.DistanceKm
	} else {
		res.DistanceKm = geo.DistanceKm(in.Pickup, in.Delivery)
	}

	subtotal := params.BaseFee
	res.add(domain.LineBase, "Base delivery fee", params.BaseFee)

	billableKm := math.Max(0, res.DistanceKm-params.FreeDistanceKm)
	if fee := billableKm * params.PerKmRate; fee > 0 {
		subtotal += fee
		res.add(domain.LineDistance, "Distance fee", fee)
		res.AppliedRules = append(res.AppliedRules, RuleDistanceFee)
	}

	if in.EffectiveWeightKg > s.WeightFreeLimitKg {
		if fee := (in.EffectiveWeightKg - s.WeightFreeLimitKg) * s.WeightSurchargePerKg; fee > 0 {
			subtotal += fee
			res.add(domain.LineWeight, "Weight surcharge", fee)
			res.AppliedRules = append(res.AppliedRules, RuleWeightSurcharge)
		}
	}

	if pickupZone, ok := c.zones.Resolve(in.Pickup); ok {
		res.PickupZone = pickupZone
		if hasDeliveryZone && pickupZone.Code != deliveryZone.Code {
			fee := float64(c.crossZone.Fee(pickupZone.Code, deliveryZone.Code))
			subtotal += fee
			res.add(domain.LineCrossZone, "Cross-zone fee", fee)
			res.AppliedRules = append(res.AppliedRules, RuleCrossZoneFee)
		}
	}

	if m := TierMultiplier(in.Tier, in.IsCityDelivery, s); m != 1.0 {
		res.add(domain.LineTier, in.Tier.Label()+" surcharge", subtotal*(m-1))
		subtotal *= m
		res.AppliedRules = append(res.AppliedRules, "tier_"+string(in.Tier))
	}

	var insurance, cod float64
	if in.PackageValueNgn > s.InsuranceThresholdNgn {
		insurance = in.PackageValueNgn * s.InsuranceRatePercent / 100
		res.add(domain.LineInsurance, "Insurance", insurance)
		res.AppliedRules = append(res.AppliedRules, RuleInsurance)
	}

	if !in.IsCityDelivery && in.PaymentMethod == domain.PaymentCOD {
		cod = in.PackageValueNgn * s.CODSurchargePercent / 100
		res.add(domain.LineCOD, "Cash on delivery fee", cod)
		res.AppliedRules = append(res.AppliedRules, RuleCODSurcharge)
	}

	platform := subtotal * s.PlatformCommissionPercent / 100
	res.add(domain.LinePlatform, "Platform fee", platform)
	res.AppliedRules = append(res.AppliedRules, RulePlatformFee)

	total := subtotal + insurance + cod + platform
	if total < params.MinFee {
		total = params.MinFee
		res.AppliedRules = append(res.AppliedRules, RuleMinFeeApplied)
	}
	if params.MaxFee > 0 && total > params.MaxFee {
		total = params.MaxFee
		res.AppliedRules = append(res.AppliedRules, RuleMaxFeeApplied)
	}

	res.RawTotal = total
	res.Total = int64(math.Round(total))
	return res
}

func (r *FeeResult) add(code domain.BreakdownCode, label string, amount float64) {
	r.Breakdown = append(r.Breakdown, domain.PriceBreakdownItem{
		Code:      code,
		Label:     label,
		AmountNgn: int64(math.Round(amount)),
	})
}
