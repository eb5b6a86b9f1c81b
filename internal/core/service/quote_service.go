package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/eta"
	"github.com/99minutos/delivery-quote/internal/core/geo"
	"github.com/99minutos/delivery-quote/internal/core/pricing"
	"github.com/99minutos/delivery-quote/internal/core/ports"
	"github.com/99minutos/delivery-quote/internal/core/zone"
	"github.com/99minutos/delivery-quote/internal/pkg/metrics"
)

const (
	currencyNGN         = "NGN"
	defaultRiderTimeout = 150 * time.Millisecond
)

// Option tags.
const (
	TagRequested        = "requested"
	TagAlternative      = "alternative"
	TagMultiPickup      = "multi_pickup"
	TagCityDelivery     = "city_delivery"
	TagRegionalDelivery = "regional_delivery"
	TagFreeShipping     = "free_shipping"
)

var freeShippingThreshold = decimal.NewFromInt(domain.FreeShippingThresholdNgn)

// SettingsSource serves the current global settings.
type SettingsSource interface {
	Get(ctx context.Context) domain.GlobalSettings
}

// CatalogSource serves the current zone catalog.
type CatalogSource interface {
	Get(ctx context.Context) domain.ZoneCatalog
}

// QuoteServiceDeps groups the collaborators of QuoteService.
type QuoteServiceDeps struct {
	Settings SettingsSource
	Catalog  CatalogSource
	// Riders and Auditor are optional.
	Riders       ports.RiderAvailabilityProvider
	Auditor      ports.QuoteAuditor
	Estimator    *eta.Estimator
	RiderTimeout time.Duration
	// DefaultHub is the pickup point of last resort.
	DefaultHub domain.Coordinates
	Now        func() time.Time
	NewID      func() string
	Logger     zerolog.Logger
}

type QuoteService struct {
	settings     SettingsSource
	catalog      CatalogSource
	riders       ports.RiderAvailabilityProvider
	auditor      ports.QuoteAuditor
	estimator    *eta.Estimator
	riderTimeout time.Duration
	defaultHub   domain.Coordinates
	now          func() time.Time
	newID        func() string
	logger       zerolog.Logger
}

func NewQuoteService(deps QuoteServiceDeps) *QuoteService {
	s := &QuoteService{
		settings:     deps.Settings,
		catalog:      deps.Catalog,
		riders:       deps.Riders,
		auditor:      deps.Auditor,
		estimator:    deps.Estimator,
		riderTimeout: deps.RiderTimeout,
		defaultHub:   deps.DefaultHub,
		now:          deps.Now,
		newID:        deps.NewID,
		logger:       deps.Logger,
	}
	if s.estimator == nil {
		s.estimator = eta.NewEstimator(time.UTC)
	}
	if s.riderTimeout <= 0 {
		s.riderTimeout = defaultRiderTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

var errQuotePanic = errors.New("quote computation panicked")

// GetQuote prices the cart for the requested tier and every alternative tier
// the delivery zone offers. Any failure is logged and answered with the
// flat-rate fallback quote.
func (s *QuoteService) GetQuote(ctx context.Context, in ports.QuoteInput) *domain.Quote {
	start := time.Now()
	defer func() { metrics.QuoteDuration.Observe(time.Since(start).Seconds()) }()

	if in.DeliveryType == "" {
		in.DeliveryType = domain.TierStandard
	}

	q, err := s.safeCompute(ctx, in)
	outcome := "computed"
	if err != nil {
		reason := fallbackReason(err)
		s.logger.Error().Err(err).
			Str("cart_id", in.CartID).
			Str("delivery_type", string(in.DeliveryType)).
			Str("reason", reason).
			Msg("quote computation failed, serving fallback")
		metrics.QuoteFallbackTotal.WithLabelValues(reason).Inc()
		q = s.fallbackQuote(in, reason, err)
		outcome = "fallback"
	}
	metrics.QuotesTotal.WithLabelValues(string(in.DeliveryType), outcome).Inc()

	s.audit(in, q)
	return q
}

// ResolveZone reports the zone containing c and the catalog tier it came from.
func (s *QuoteService) ResolveZone(ctx context.Context, c domain.Coordinates) (*domain.ZoneConfig, string) {
	z, tier := zone.NewResolver(s.catalog.Get(ctx)).Match(c)
	metrics.ZoneResolutionsTotal.WithLabelValues(tier).Inc()
	return z, tier
}

func (s *QuoteService) safeCompute(ctx context.Context, in ports.QuoteInput) (q *domain.Quote, err error) {
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, fmt.Errorf("%w: %v", errQuotePanic, r)
		}
	}()
	return s.compute(ctx, in)
}

type pickupGroup struct {
	id    string
	items []domain.CartItem
}

// groupByPickup partitions items by pickup location, ordered by location id.
func groupByPickup(items []domain.CartItem) []pickupGroup {
	byID := make(map[string][]domain.CartItem)
	for _, it := range items {
		byID[it.PickupLocationID] = append(byID[it.PickupLocationID], it)
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groups := make([]pickupGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, pickupGroup{id: id, items: byID[id]})
	}
	return groups
}

func (s *QuoteService) compute(ctx context.Context, in ports.QuoteInput) (*domain.Quote, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !geo.ValidCoordinates(in.DeliveryCoords) {
		return nil, fmt.Errorf("delivery coordinates: %w", domain.ErrInvalidCoordinates)
	}

	requestedAt := in.RequestedAt
	if requestedAt.IsZero() {
		requestedAt = s.now()
	}
	tier := in.DeliveryType

	settings := s.settings.Get(ctx)
	catalog := s.catalog.Get(ctx)
	resolver := zone.NewResolver(catalog)
	composer := pricing.NewComposer(resolver, zone.NewCrossZoneTable(catalog.CrossZoneFees, settings.DefaultCrossZoneFee))

	weight := pricing.EffectiveWeight(in.Items)
	groups := groupByPickup(in.Items)

	deliveryZone, catalogTier := resolver.Match(in.DeliveryCoords)
	metrics.ZoneResolutionsTotal.WithLabelValues(catalogTier).Inc()
	var zoneCode string
	if deliveryZone != nil {
		zoneCode = deliveryZone.Code
	}
	isCity := domain.IsCityZone(zoneCode)
	riders := s.riderSnapshot(ctx, zoneCode)

	var (
		grandTotal    int64
		totalDistance float64
		combined      domain.ETAWindow
		rules         []string
		firstPickup   domain.Coordinates
	)
	shipments := make([]domain.ShipmentFee, 0, len(groups))

	for i, g := range groups {
		pickup := s.pickupCoords(g, in, catalog)
		if i == 0 {
			firstPickup = pickup
		}
		value := pricing.PackageValue(g.items).InexactFloat64()
		groupWeight := pricing.EffectiveWeight(g.items)

		fee := composer.Compose(pricing.FeeInput{
			Pickup:            pickup,
			Delivery:          in.DeliveryCoords,
			EffectiveWeightKg: groupWeight,
			PackageValueNgn:   value,
			Tier:              tier,
			PaymentMethod:     in.PaymentMethod,
			IsCityDelivery:    isCity,
			Settings:          settings,
		})
		if !isFinite(fee.RawTotal) || !isFinite(fee.DistanceKm) {
			return nil, fmt.Errorf("pickup %q: %w", g.id, domain.ErrNonFiniteAmount)
		}

		window := s.estimator.Estimate(fee.DistanceKm, deliveryZone, tier, requestedAt, riders)
		if i == 0 {
			combined = window
		} else {
			combined.Min = min(combined.Min, window.Min)
			combined.Max = max(combined.Max, window.Max)
		}

		grandTotal += fee.Total
		totalDistance += fee.DistanceKm
		rules = append(rules, fee.AppliedRules...)

		shipment := domain.ShipmentFee{
			PickupLocationID: g.id,
			DistanceKm:       fee.DistanceKm,
			WeightKg:         groupWeight,
			PackageValueNgn:  value,
			FeeNgn:           fee.Total,
			Breakdown:        fee.Breakdown,
			AppliedRules:     uniqueSorted(fee.AppliedRules),
			ETA:              window,
		}
		if fee.PickupZone != nil {
			shipment.PickupZoneCode = fee.PickupZone.Code
		}
		shipments = append(shipments, shipment)
	}
	combined.Friendly = eta.FormatWindow(combined.Min, combined.Max)

	free := in.SubtotalNgn.GreaterThan(freeShippingThreshold)
	sharedTags := make([]string, 0, 3)
	if len(groups) > 1 {
		sharedTags = append(sharedTags, TagMultiPickup)
	}
	if isCity {
		sharedTags = append(sharedTags, TagCityDelivery)
	} else {
		sharedTags = append(sharedTags, TagRegionalDelivery)
	}
	if free {
		sharedTags = append(sharedTags, TagFreeShipping)
		rules = append(rules, TagFreeShipping)
	}

	primary := domain.DeliveryOption{
		ID:             tier,
		Label:          tier.Label(),
		PriceNgn:       grandTotal,
		PriceBreakdown: mergeBreakdowns(shipments),
		ETA:            combined,
		AppliedRules:   uniqueSorted(rules),
		Tags:           append([]string{TagRequested}, sharedTags...),
	}
	if free {
		primary.PriceNgn = 0
	}
	primary.IsAvailable, primary.SuspensionReason = availability(deliveryZone, tier)

	// Alternatives are priced as one shipment over the averaged distance.
	avgDistance := geo.Round(totalDistance/float64(len(groups)), 3)
	cartValue := pricing.PackageValue(in.Items).InexactFloat64()
	alternatives := make([]domain.DeliveryOption, 0, len(domain.DeliveryTiers)-1)
	for _, alt := range domain.DeliveryTiers {
		if alt == tier || (deliveryZone != nil && !deliveryZone.AllowsTier(alt)) {
			continue
		}
		fee := composer.Compose(pricing.FeeInput{
			Pickup:            firstPickup,
			Delivery:          in.DeliveryCoords,
			DistanceKm:        &avgDistance,
			EffectiveWeightKg: weight,
			PackageValueNgn:   cartValue,
			Tier:              alt,
			PaymentMethod:     in.PaymentMethod,
			IsCityDelivery:    isCity,
			Settings:          settings,
		})
		if !isFinite(fee.RawTotal) {
			return nil, fmt.Errorf("alternative %s: %w", alt, domain.ErrNonFiniteAmount)
		}
		altRules := fee.AppliedRules
		if free {
			altRules = append(altRules, TagFreeShipping)
		}

		opt := domain.DeliveryOption{
			ID:             alt,
			Label:          alt.Label(),
			PriceNgn:       fee.Total,
			PriceBreakdown: fee.Breakdown,
			ETA:            s.estimator.Estimate(avgDistance, deliveryZone, alt, requestedAt, riders),
			AppliedRules:   uniqueSorted(altRules),
			Tags:           append([]string{TagAlternative}, sharedTags...),
		}
		if free {
			opt.PriceNgn = 0
		}
		opt.IsAvailable, opt.SuspensionReason = availability(deliveryZone, alt)
		alternatives = append(alternatives, opt)
	}
	rankAlternatives(alternatives)

	q := &domain.Quote{
		ID:                s.newID(),
		CartID:            in.CartID,
		Currency:          currencyNGN,
		DeliveryZoneCode:  zoneCode,
		EffectiveWeightKg: weight,
		DistanceKm:        geo.Round(totalDistance, 3),
		DeliveryOptions:   append([]domain.DeliveryOption{primary}, alternatives...),
		GrandTotalNgn:     primary.PriceNgn,
		GeneratedAt:       s.now(),
	}
	if len(groups) > 1 {
		q.PerShipmentFees = shipments
	}

	s.logger.Debug().
		Str("quote_id", q.ID).
		Str("cart_id", in.CartID).
		Str("zone_code", zoneCode).
		Str("delivery_type", string(tier)).
		Int("pickup_groups", len(groups)).
		Int64("grand_total_ngn", q.GrandTotalNgn).
		Msg("quote computed")
	return q, nil
}

// pickupCoords picks the origin of a group: the first item coordinates, then
// the hub registered under the pickup location id, then the request pickup,
// then the request store hub, then the configured default hub.
func (s *QuoteService) pickupCoords(g pickupGroup, in ports.QuoteInput, catalog domain.ZoneCatalog) domain.Coordinates {
	for _, it := range g.items {
		if it.PickupCoords != nil {
			return *it.PickupCoords
		}
	}
	if hub, ok := catalog.Hubs[g.id]; ok {
		return hub
	}
	if in.PickupCoords != nil {
		return *in.PickupCoords
	}
	if hub, ok := catalog.Hubs[in.StoreHubID]; ok && in.StoreHubID != "" {
		return hub
	}
	return s.defaultHub
}

// riderSnapshot fetches live rider availability within riderTimeout, falling
// back to the default snapshot.
func (s *QuoteService) riderSnapshot(ctx context.Context, zoneCode string) domain.RiderAvailability {
	if s.riders == nil {
		metrics.RiderSnapshotTotal.WithLabelValues("default").Inc()
		return domain.DefaultRiderAvailability()
	}

	ctx, cancel := context.WithTimeout(ctx, s.riderTimeout)
	defer cancel()

	snap, err := s.riders.Snapshot(ctx, zoneCode)
	switch {
	case errors.Is(err, domain.ErrNoRiderSnapshot):
		metrics.RiderSnapshotTotal.WithLabelValues("default").Inc()
		return domain.DefaultRiderAvailability()
	case err != nil:
		s.logger.Warn().Err(err).Str("zone_code", zoneCode).Msg("rider snapshot unavailable, using default")
		metrics.RiderSnapshotTotal.WithLabelValues("error").Inc()
		return domain.DefaultRiderAvailability()
	}
	metrics.RiderSnapshotTotal.WithLabelValues("live").Inc()
	return snap
}

func (s *QuoteService) audit(in ports.QuoteInput, q *domain.Quote) {
	if s.auditor == nil {
		return
	}
	s.auditor.Enqueue(domain.QuoteAudit{
		ID:               s.newID(),
		QuoteID:          q.ID,
		CartID:           in.CartID,
		DeliveryType:     in.DeliveryType,
		PaymentMethod:    in.PaymentMethod,
		DeliveryCoords:   in.DeliveryCoords,
		DeliveryZoneCode: q.DeliveryZoneCode,
		SubtotalNgn:      in.SubtotalNgn.String(),
		ItemCount:        len(in.Items),
		GrandTotalNgn:    q.GrandTotalNgn,
		Options:          q.DeliveryOptions,
		PerShipmentFees:  q.PerShipmentFees,
		Fallback:         q.Fallback,
		RequestedAt:      in.RequestedAt,
		CreatedAt:        q.GeneratedAt,
	})
}

// availability reports whether tier can be booked in z.
func availability(z *domain.ZoneConfig, tier domain.DeliveryTier) (bool, string) {
	if z == nil {
		return true, ""
	}
	if z.IsSuspended {
		if z.SuspensionReason != "" {
			return false, z.SuspensionReason
		}
		return false, fmt.Sprintf("Deliveries to %s are temporarily suspended", z.Name)
	}
	if !z.AllowsTier(tier) {
		return false, fmt.Sprintf("%s is not offered in %s", tier.Label(), z.Name)
	}
	return true, ""
}

// rankAlternatives orders options available first, then by price, then by tier.
func rankAlternatives(opts []domain.DeliveryOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		a, b := opts[i], opts[j]
		if a.IsAvailable != b.IsAvailable {
			return a.IsAvailable
		}
		if a.PriceNgn != b.PriceNgn {
			return a.PriceNgn < b.PriceNgn
		}
		return a.ID.Rank() < b.ID.Rank()
	})
}

// mergeBreakdowns sums the shipment ledgers line by line, keeping the
// canonical ledger order.
func mergeBreakdowns(shipments []domain.ShipmentFee) []domain.PriceBreakdownItem {
	if len(shipments) == 1 {
		return shipments[0].Breakdown
	}
	merged := make([]domain.PriceBreakdownItem, 0, 8)
	index := make(map[domain.BreakdownCode]int)
	for _, sh := range shipments {
		for _, line := range sh.Breakdown {
			if i, ok := index[line.Code]; ok {
				merged[i].AmountNgn += line.AmountNgn
				continue
			}
			index[line.Code] = len(merged)
			merged = append(merged, line)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Code.Rank() < merged[j].Code.Rank()
	})
	return merged
}

func uniqueSorted(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
