package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/eta"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type staticSettings struct{ s domain.GlobalSettings }

func (s staticSettings) Get(context.Context) domain.GlobalSettings { return s.s }

type staticCatalog struct{ c domain.ZoneCatalog }

func (s staticCatalog) Get(context.Context) domain.ZoneCatalog { return s.c }

type panickingSettings struct{}

func (panickingSettings) Get(context.Context) domain.GlobalSettings { panic("settings exploded") }

type stubRiders struct {
	snap  domain.RiderAvailability
	err   error
	zones []string
}

func (r *stubRiders) Snapshot(_ context.Context, zoneCode string) (domain.RiderAvailability, error) {
	r.zones = append(r.zones, zoneCode)
	return r.snap, r.err
}

type stubAuditor struct {
	records []domain.QuoteAudit
}

func (a *stubAuditor) Enqueue(audit domain.QuoteAudit) {
	a.records = append(a.records, audit)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var (
	highLevel   = domain.Coordinates{Lat: 7.7337, Lng: 8.5214}
	twoKmNorth  = domain.Coordinates{Lat: 7.7517, Lng: 8.5214} // 2.002 km from highLevel
	lagosIsland = domain.Coordinates{Lat: 6.4550, Lng: 3.3941}
	offPeak     = time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)
)

func cityZone() domain.ZoneConfig {
	return domain.ZoneConfig{
		Code:    "MKD_HIGH_LEVEL",
		Name:    "High Level",
		Kind:    domain.ZoneKindPolygon,
		Center:  highLevel,
		Pricing: domain.ZonePricing{BaseFee: 300, PerKmRate: 50},
		ETA: domain.ZoneETA{
			BaseDispatchMinutes:      10,
			TravelProfile:            domain.ProfileUrban,
			CongestionFactor:         0.2,
			OperationalBufferPercent: 0.1,
			PickupHandlingMinutes:    domain.HandlingWindow{Min: 4, Max: 6},
		},
		IsActive: true,
	}
}

func catalogWith(zones ...domain.ZoneConfig) domain.ZoneCatalog {
	return domain.ZoneCatalog{CityZones: zones}
}

func cartItem(id, pickupID string, price int64, weightKg string, coords domain.Coordinates) domain.CartItem {
	c := coords
	return domain.CartItem{
		ID:               id,
		ProductID:        "prod-" + id,
		Quantity:         1,
		Price:            decimal.NewFromInt(price),
		WeightKg:         decimal.RequireFromString(weightKg),
		PickupLocationID: pickupID,
		PickupCoords:     &c,
	}
}

func quoteInput(items ...domain.CartItem) ports.QuoteInput {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineValue())
	}
	return ports.QuoteInput{
		CartID:         "cart-1",
		SubtotalNgn:    subtotal,
		Items:          items,
		PaymentMethod:  domain.PaymentCard,
		DeliveryCoords: highLevel,
		DeliveryType:   domain.TierStandard,
		RequestedAt:    offPeak,
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newQuoteSvc(settings SettingsSource, catalog domain.ZoneCatalog, riders ports.RiderAvailabilityProvider, auditor ports.QuoteAuditor) *QuoteService {
	deps := QuoteServiceDeps{
		Settings:   settings,
		Catalog:    staticCatalog{c: catalog},
		Estimator:  eta.NewEstimator(time.UTC),
		DefaultHub: highLevel,
		Now:        func() time.Time { return offPeak },
		NewID:      sequentialIDs(),
		Logger:     zerolog.Nop(),
	}
	if riders != nil {
		deps.Riders = riders
	}
	if auditor != nil {
		deps.Auditor = auditor
	}
	return NewQuoteService(deps)
}

func defaultSvc(catalog domain.ZoneCatalog) *QuoteService {
	return newQuoteSvc(staticSettings{s: domain.DefaultSettings()}, catalog, nil, nil)
}

func optionIDs(q *domain.Quote) []domain.DeliveryTier {
	ids := make([]domain.DeliveryTier, 0, len(q.DeliveryOptions))
	for _, o := range q.DeliveryOptions {
		ids = append(ids, o.ID)
	}
	return ids
}

func hasTag(o domain.DeliveryOption, tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Computed quotes
// ---------------------------------------------------------------------------

func TestQuoteService_SinglePickupInCity(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))

	if q.Fallback != nil {
		t.Fatalf("unexpected fallback: %+v", q.Fallback)
	}
	if q.Currency != "NGN" || q.CartID != "cart-1" {
		t.Errorf("unexpected envelope: currency=%s cart=%s", q.Currency, q.CartID)
	}
	if q.DeliveryZoneCode != "MKD_HIGH_LEVEL" {
		t.Errorf("expected delivery zone MKD_HIGH_LEVEL, got %q", q.DeliveryZoneCode)
	}
	if q.DistanceKm != 2.002 {
		t.Errorf("expected distance 2.002, got %v", q.DistanceKm)
	}
	if q.PerShipmentFees != nil {
		t.Errorf("expected no per-shipment fees for a single pickup group")
	}

	primary := q.DeliveryOptions[0]
	if primary.ID != domain.TierStandard || primary.PriceNgn != 460 || q.GrandTotalNgn != 460 {
		t.Fatalf("expected standard option at 460, got %s at %d (grand total %d)", primary.ID, primary.PriceNgn, q.GrandTotalNgn)
	}
	wantLines := []domain.PriceBreakdownItem{
		{Code: domain.LineBase, Label: "Base delivery fee", AmountNgn: 300},
		{Code: domain.LineDistance, Label: "Distance fee", AmountNgn: 100},
		{Code: domain.LinePlatform, Label: "Platform fee", AmountNgn: 60},
	}
	if !reflect.DeepEqual(primary.PriceBreakdown, wantLines) {
		t.Errorf("unexpected breakdown: %+v", primary.PriceBreakdown)
	}
	wantRules := []string{"distance_fee", "platform_fee", "zone_MKD_HIGH_LEVEL_base"}
	if !reflect.DeepEqual(primary.AppliedRules, wantRules) {
		t.Errorf("expected sorted rules %v, got %v", wantRules, primary.AppliedRules)
	}
	wantETA := domain.ETAWindow{Min: 25, Max: 28, Friendly: "25-28 mins"}
	if primary.ETA != wantETA {
		t.Errorf("expected ETA %+v, got %+v", wantETA, primary.ETA)
	}
	if !reflect.DeepEqual(primary.Tags, []string{TagRequested, TagCityDelivery}) {
		t.Errorf("unexpected tags: %v", primary.Tags)
	}
	if !primary.IsAvailable {
		t.Error("expected requested option to be available")
	}
}

func TestQuoteService_AlternativesRankedByAvailabilityThenPrice(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))

	wantIDs := []domain.DeliveryTier{domain.TierStandard, domain.TierScheduled, domain.TierExpress, domain.TierSameDay}
	if got := optionIDs(q); !reflect.DeepEqual(got, wantIDs) {
		t.Fatalf("expected options %v, got %v", wantIDs, got)
	}

	wantPrices := []int64{460, 460, 598, 690}
	for i, o := range q.DeliveryOptions {
		if o.PriceNgn != wantPrices[i] {
			t.Errorf("%s: expected price %d, got %d", o.ID, wantPrices[i], o.PriceNgn)
		}
		if i > 0 && !hasTag(o, TagAlternative) {
			t.Errorf("%s: expected alternative tag, got %v", o.ID, o.Tags)
		}
	}

	express := q.DeliveryOptions[2]
	if express.PriceBreakdown[2].Label != "Express Delivery surcharge" || express.PriceBreakdown[2].AmountNgn != 120 {
		t.Errorf("unexpected express surcharge line: %+v", express.PriceBreakdown[2])
	}
}

func TestQuoteService_MultiPickupGroups(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	in := quoteInput(
		cartItem("i2", "store-b", 10000, "2", highLevel),
		cartItem("i1", "store-a", 10000, "2", twoKmNorth),
	)
	q := svc.GetQuote(context.Background(), in)

	if len(q.PerShipmentFees) != 2 {
		t.Fatalf("expected 2 shipment fees, got %d", len(q.PerShipmentFees))
	}
	if q.PerShipmentFees[0].PickupLocationID != "store-a" || q.PerShipmentFees[1].PickupLocationID != "store-b" {
		t.Errorf("expected shipments sorted by pickup id, got %s, %s",
			q.PerShipmentFees[0].PickupLocationID, q.PerShipmentFees[1].PickupLocationID)
	}
	if q.PerShipmentFees[0].FeeNgn != 460 || q.PerShipmentFees[1].FeeNgn != 345 {
		t.Errorf("unexpected shipment fees: %d, %d", q.PerShipmentFees[0].FeeNgn, q.PerShipmentFees[1].FeeNgn)
	}

	primary := q.DeliveryOptions[0]
	if primary.PriceNgn != 805 {
		t.Errorf("expected grand total 805, got %d", primary.PriceNgn)
	}
	wantLines := []domain.PriceBreakdownItem{
		{Code: domain.LineBase, Label: "Base delivery fee", AmountNgn: 600},
		{Code: domain.LineDistance, Label: "Distance fee", AmountNgn: 100},
		{Code: domain.LinePlatform, Label: "Platform fee", AmountNgn: 105},
	}
	if !reflect.DeepEqual(primary.PriceBreakdown, wantLines) {
		t.Errorf("unexpected merged breakdown: %+v", primary.PriceBreakdown)
	}
	if !hasTag(primary, TagMultiPickup) {
		t.Errorf("expected multi_pickup tag, got %v", primary.Tags)
	}

	a, b := q.PerShipmentFees[0].ETA, q.PerShipmentFees[1].ETA
	if primary.ETA.Min != min(a.Min, b.Min) || primary.ETA.Max != max(a.Max, b.Max) {
		t.Errorf("expected combined ETA of fastest min and slowest max, got %+v from %+v and %+v", primary.ETA, a, b)
	}
}

func TestQuoteService_FreeShippingOverride(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 60000, "2", twoKmNorth)))

	if q.Fallback != nil {
		t.Fatalf("unexpected fallback: %+v", q.Fallback)
	}
	if q.GrandTotalNgn != 0 {
		t.Errorf("expected grand total 0, got %d", q.GrandTotalNgn)
	}
	for _, o := range q.DeliveryOptions {
		if o.PriceNgn != 0 {
			t.Errorf("%s: expected free shipping, got %d", o.ID, o.PriceNgn)
		}
		if !hasTag(o, TagFreeShipping) {
			t.Errorf("%s: expected free_shipping tag", o.ID)
		}
	}
}

func TestQuoteService_NoZoneUsesRegionalFallback(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	in := quoteInput(cartItem("i1", "store-a", 10000, "2", lagosIsland))
	in.DeliveryCoords = domain.Coordinates{Lat: 6.4281, Lng: 3.4219}

	q := svc.GetQuote(context.Background(), in)

	if q.Fallback != nil {
		t.Fatalf("unexpected fallback: %+v", q.Fallback)
	}
	if q.DeliveryZoneCode != "" {
		t.Errorf("expected no delivery zone, got %q", q.DeliveryZoneCode)
	}
	primary := q.DeliveryOptions[0]
	if !hasTag(primary, TagRegionalDelivery) {
		t.Errorf("expected regional_delivery tag, got %v", primary.Tags)
	}
	found := false
	for _, r := range primary.AppliedRules {
		if r == "benue_fallback" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected benue_fallback rule, got %v", primary.AppliedRules)
	}
	if len(q.DeliveryOptions) != len(domain.DeliveryTiers) {
		t.Errorf("expected every tier offered outside zones, got %v", optionIDs(q))
	}
}

func TestQuoteService_SuspendedZone(t *testing.T) {
	z := cityZone()
	z.IsSuspended = true
	z.SuspensionReason = "Flooding on the old bridge"
	svc := defaultSvc(catalogWith(z))

	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))

	for _, o := range q.DeliveryOptions {
		if o.IsAvailable {
			t.Errorf("%s: expected unavailable in suspended zone", o.ID)
		}
		if o.SuspensionReason != "Flooding on the old bridge" {
			t.Errorf("%s: unexpected suspension reason %q", o.ID, o.SuspensionReason)
		}
	}
}

func TestQuoteService_TierNotAllowedInZone(t *testing.T) {
	z := cityZone()
	z.DeliveryTypesAllowed = []domain.DeliveryTier{domain.TierStandard, domain.TierExpress}
	svc := defaultSvc(catalogWith(z))

	in := quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth))
	in.DeliveryType = domain.TierSameDay
	q := svc.GetQuote(context.Background(), in)

	primary := q.DeliveryOptions[0]
	if primary.ID != domain.TierSameDay || primary.IsAvailable {
		t.Fatalf("expected unavailable same_day primary, got %s available=%v", primary.ID, primary.IsAvailable)
	}
	if primary.SuspensionReason != "Same-Day Delivery is not offered in High Level" {
		t.Errorf("unexpected reason %q", primary.SuspensionReason)
	}
	want := []domain.DeliveryTier{domain.TierSameDay, domain.TierStandard, domain.TierExpress}
	if got := optionIDs(q); !reflect.DeepEqual(got, want) {
		t.Errorf("expected options %v, got %v", want, got)
	}
}

func TestQuoteService_EmptyDeliveryTypeDefaultsToStandard(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	in := quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth))
	in.DeliveryType = ""

	q := svc.GetQuote(context.Background(), in)
	if q.DeliveryOptions[0].ID != domain.TierStandard {
		t.Errorf("expected standard primary, got %s", q.DeliveryOptions[0].ID)
	}
}

// ---------------------------------------------------------------------------
// Rider availability
// ---------------------------------------------------------------------------

func TestQuoteService_LiveRiderSnapshotSlowsETA(t *testing.T) {
	riders := &stubRiders{snap: domain.RiderAvailability{ActiveRiders: 0, QueuedJobs: 10}}
	svc := newQuoteSvc(staticSettings{s: domain.DefaultSettings()}, catalogWith(cityZone()), riders, nil)

	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))

	if len(riders.zones) != 1 || riders.zones[0] != "MKD_HIGH_LEVEL" {
		t.Errorf("expected snapshot for MKD_HIGH_LEVEL, got %v", riders.zones)
	}
	// 40 extra minutes of rider delay on top of the 25-minute baseline
	if got := q.DeliveryOptions[0].ETA.Min; got != 65 {
		t.Errorf("expected ETA min 65, got %d", got)
	}
}

func TestQuoteService_RiderErrorFallsBackToDefaultSnapshot(t *testing.T) {
	for _, err := range []error{errors.New("redis down"), domain.ErrNoRiderSnapshot} {
		riders := &stubRiders{err: err}
		svc := newQuoteSvc(staticSettings{s: domain.DefaultSettings()}, catalogWith(cityZone()), riders, nil)

		q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))
		if q.Fallback != nil {
			t.Fatalf("rider failure must not degrade the quote: %+v", q.Fallback)
		}
		if got := q.DeliveryOptions[0].ETA.Min; got != 25 {
			t.Errorf("%v: expected default-snapshot ETA min 25, got %d", err, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Fallback
// ---------------------------------------------------------------------------

func TestQuoteService_Fallback(t *testing.T) {
	nanSettings := domain.DefaultSettings()
	nanSettings.PlatformCommissionPercent = math.NaN()

	tests := []struct {
		name       string
		settings   SettingsSource
		in         ports.QuoteInput
		wantReason string
		wantPrice  int64
	}{
		{
			name:       "empty cart",
			settings:   staticSettings{s: domain.DefaultSettings()},
			in:         quoteInput(),
			wantReason: "empty_cart",
			wantPrice:  2500,
		},
		{
			name:       "panic in a collaborator",
			settings:   panickingSettings{},
			in:         quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)),
			wantReason: "panic",
			wantPrice:  2500,
		},
		{
			name:       "non-finite amount",
			settings:   staticSettings{s: nanSettings},
			in:         quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)),
			wantReason: "non_finite",
			wantPrice:  2500,
		},
		{
			name:       "free shipping threshold still applies",
			settings:   panickingSettings{},
			in:         quoteInput(cartItem("i1", "store-a", 75000, "2", twoKmNorth)),
			wantReason: "panic",
			wantPrice:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditor := &stubAuditor{}
			svc := newQuoteSvc(tt.settings, catalogWith(cityZone()), nil, auditor)

			q := svc.GetQuote(context.Background(), tt.in)

			if q.Fallback == nil {
				t.Fatal("expected fallback quote")
			}
			if q.Fallback.Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %q (%s)", tt.wantReason, q.Fallback.Reason, q.Fallback.Error)
			}
			if len(q.DeliveryOptions) != 1 {
				t.Fatalf("expected a single fallback option, got %d", len(q.DeliveryOptions))
			}
			o := q.DeliveryOptions[0]
			if o.ID != FallbackOptionID || o.PriceNgn != tt.wantPrice || q.GrandTotalNgn != tt.wantPrice {
				t.Errorf("unexpected fallback option %s at %d", o.ID, o.PriceNgn)
			}
			if o.ETA.Min != 45 || o.ETA.Max != 90 || o.ETA.Friendly != "45-90 mins" {
				t.Errorf("unexpected fallback ETA %+v", o.ETA)
			}
			if !hasTag(o, TagFallback) {
				t.Errorf("expected frontend_fallback tag, got %v", o.Tags)
			}
			if len(auditor.records) != 1 || auditor.records[0].Fallback == nil {
				t.Errorf("expected fallback quote to be audited")
			}
		})
	}
}

func TestQuoteService_InvalidDeliveryCoordinates(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))
	in := quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth))
	in.DeliveryCoords = domain.Coordinates{Lat: math.NaN(), Lng: 8.52}

	q := svc.GetQuote(context.Background(), in)
	if q.Fallback == nil || q.Fallback.Reason != "invalid_coordinates" {
		t.Fatalf("expected invalid_coordinates fallback, got %+v", q.Fallback)
	}
}

// ---------------------------------------------------------------------------
// Audit, pickup resolution, zone lookup
// ---------------------------------------------------------------------------

func TestQuoteService_AuditsComputedQuote(t *testing.T) {
	auditor := &stubAuditor{}
	svc := newQuoteSvc(staticSettings{s: domain.DefaultSettings()}, catalogWith(cityZone()), nil, auditor)

	q := svc.GetQuote(context.Background(), quoteInput(cartItem("i1", "store-a", 10000, "2", twoKmNorth)))

	if len(auditor.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(auditor.records))
	}
	rec := auditor.records[0]
	if rec.QuoteID != q.ID || rec.ID == q.ID {
		t.Errorf("expected audit id distinct from quote id %q, got audit=%q quote=%q", q.ID, rec.ID, rec.QuoteID)
	}
	if rec.CartID != "cart-1" || rec.GrandTotalNgn != 460 || rec.SubtotalNgn != "10000" {
		t.Errorf("unexpected audit record: %+v", rec)
	}
	if rec.Fallback != nil {
		t.Error("computed quote must not carry fallback metadata")
	}
}

func TestQuoteService_PickupCoordsResolution(t *testing.T) {
	hub := domain.Coordinates{Lat: 7.70, Lng: 8.50}
	storeHub := domain.Coordinates{Lat: 7.71, Lng: 8.51}
	reqPickup := domain.Coordinates{Lat: 7.72, Lng: 8.52}
	itemCoords := domain.Coordinates{Lat: 7.73, Lng: 8.53}

	catalog := domain.ZoneCatalog{Hubs: map[string]domain.Coordinates{"loc-hub": hub, "hub-main": storeHub}}
	svc := defaultSvc(catalog)

	bare := domain.CartItem{ID: "x", Quantity: 1, PickupLocationID: "loc-none"}
	withCoords := bare
	withCoords.PickupCoords = &itemCoords

	tests := []struct {
		name  string
		group pickupGroup
		in    ports.QuoteInput
		want  domain.Coordinates
	}{
		{"item coordinates", pickupGroup{id: "loc-hub", items: []domain.CartItem{bare, withCoords}}, ports.QuoteInput{PickupCoords: &reqPickup}, itemCoords},
		{"hub for pickup location", pickupGroup{id: "loc-hub", items: []domain.CartItem{bare}}, ports.QuoteInput{PickupCoords: &reqPickup}, hub},
		{"request pickup", pickupGroup{id: "loc-none", items: []domain.CartItem{bare}}, ports.QuoteInput{PickupCoords: &reqPickup, StoreHubID: "hub-main"}, reqPickup},
		{"store hub", pickupGroup{id: "loc-none", items: []domain.CartItem{bare}}, ports.QuoteInput{StoreHubID: "hub-main"}, storeHub},
		{"default hub", pickupGroup{id: "loc-none", items: []domain.CartItem{bare}}, ports.QuoteInput{StoreHubID: "unknown"}, highLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.pickupCoords(tt.group, tt.in, catalog); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestQuoteService_ResolveZone(t *testing.T) {
	svc := defaultSvc(catalogWith(cityZone()))

	z, tier := svc.ResolveZone(context.Background(), twoKmNorth)
	if z == nil || z.Code != "MKD_HIGH_LEVEL" || tier != "city" {
		t.Errorf("expected MKD_HIGH_LEVEL from city catalog, got %v / %s", z, tier)
	}

	z, tier = svc.ResolveZone(context.Background(), lagosIsland)
	if z != nil || tier != "none" {
		t.Errorf("expected no zone, got %v / %s", z, tier)
	}
}

func TestGroupByPickup_SortedKeys(t *testing.T) {
	items := []domain.CartItem{
		{ID: "1", PickupLocationID: "zeta"},
		{ID: "2", PickupLocationID: "alpha"},
		{ID: "3", PickupLocationID: "zeta"},
		{ID: "4", PickupLocationID: "mid"},
	}

	groups := groupByPickup(items)

	var ids []string
	for _, g := range groups {
		ids = append(ids, g.id)
	}
	if !reflect.DeepEqual(ids, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("unexpected group order %v", ids)
	}
	if len(groups[2].items) != 2 || groups[2].items[0].ID != "1" || groups[2].items[1].ID != "3" {
		t.Errorf("expected item order kept inside a group, got %+v", groups[2].items)
	}
}
