package handler

import (
	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
	"github.com/99minutos/delivery-quote/internal/core/zone"
)

// --- Request → Service input ---

func toQuoteInput(req quoteRequest) ports.QuoteInput {
	in := ports.QuoteInput{
		CartID:         req.CartID,
		SubtotalNgn:    req.SubtotalNgn,
		Items:          make([]domain.CartItem, 0, len(req.Items)),
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		PickupCoords:   toCoordinatesPtr(req.PickupCoords),
		DeliveryCoords: toCoordinates(req.DeliveryCoords),
		DeliveryType:   domain.DeliveryTier(req.DeliveryType),
		StoreHubID:     req.StoreHubID,
	}
	if req.RequestedAt != nil {
		in.RequestedAt = *req.RequestedAt
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, toCartItem(item))
	}
	return in
}

func toCartItem(r cartItemRequest) domain.CartItem {
	item := domain.CartItem{
		ID:               r.ID,
		ProductID:        r.ProductID,
		Quantity:         r.Quantity,
		Price:            r.Price,
		PickupLocationID: r.PickupLocationID,
		PickupCoords:     toCoordinatesPtr(r.PickupCoords),
	}
	if r.WeightKg != nil {
		item.WeightKg = *r.WeightKg
	}
	if r.Dimensions != nil {
		item.Dimensions = &domain.Dimensions{
			LengthCm: r.Dimensions.LengthCm,
			WidthCm:  r.Dimensions.WidthCm,
			HeightCm: r.Dimensions.HeightCm,
		}
	}
	return item
}

// toCoordinates expects a validated request; nil fields read as zero.
func toCoordinates(r *coordinatesRequest) domain.Coordinates {
	var c domain.Coordinates
	if r == nil {
		return c
	}
	if r.Lat != nil {
		c.Lat = *r.Lat
	}
	if r.Lng != nil {
		c.Lng = *r.Lng
	}
	return c
}

func toCoordinatesPtr(r *coordinatesRequest) *domain.Coordinates {
	if r == nil {
		return nil
	}
	c := toCoordinates(r)
	return &c
}

// --- Domain → Response ---

func toQuoteResponse(q *domain.Quote) quoteResponse {
	resp := quoteResponse{
		QuoteID:           q.ID,
		CartID:            q.CartID,
		Currency:          q.Currency,
		DeliveryZone:      q.DeliveryZoneCode,
		EffectiveWeightKg: q.EffectiveWeightKg,
		DistanceKm:        q.DistanceKm,
		DeliveryOptions:   make([]deliveryOptionResponse, 0, len(q.DeliveryOptions)),
		GrandTotalNgn:     q.GrandTotalNgn,
		GeneratedAt:       q.GeneratedAt.UTC(),
	}
	for _, opt := range q.DeliveryOptions {
		resp.DeliveryOptions = append(resp.DeliveryOptions, toOptionResponse(opt))
	}
	for _, fee := range q.PerShipmentFees {
		resp.PerShipmentFees = append(resp.PerShipmentFees, toShipmentFeeResponse(fee))
	}
	if q.Fallback != nil {
		resp.Fallback = &fallbackResponse{Reason: q.Fallback.Reason, Error: q.Fallback.Error}
	}
	return resp
}

func toOptionResponse(o domain.DeliveryOption) deliveryOptionResponse {
	return deliveryOptionResponse{
		ID:                  string(o.ID),
		Label:               o.Label,
		PriceNgn:            o.PriceNgn,
		PriceBreakdown:      toBreakdownResponse(o.PriceBreakdown),
		EstimatedEtaMinutes: etaMinutesResponse{Min: o.ETA.Min, Max: o.ETA.Max},
		EtaFriendly:         o.ETA.Friendly,
		AppliedRules:        nonNil(o.AppliedRules),
		Tags:                nonNil(o.Tags),
		IsAvailable:         o.IsAvailable,
		SuspensionReason:    o.SuspensionReason,
	}
}

func toShipmentFeeResponse(f domain.ShipmentFee) shipmentFeeResponse {
	return shipmentFeeResponse{
		PickupLocationID:    f.PickupLocationID,
		PickupZone:          f.PickupZoneCode,
		DistanceKm:          f.DistanceKm,
		WeightKg:            f.WeightKg,
		FeeNgn:              f.FeeNgn,
		PriceBreakdown:      toBreakdownResponse(f.Breakdown),
		AppliedRules:        nonNil(f.AppliedRules),
		EstimatedEtaMinutes: etaMinutesResponse{Min: f.ETA.Min, Max: f.ETA.Max},
		EtaFriendly:         f.ETA.Friendly,
	}
}

func toBreakdownResponse(items []domain.PriceBreakdownItem) []breakdownItemResponse {
	out := make([]breakdownItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, breakdownItemResponse{
			Code:      string(it.Code),
			Label:     it.Label,
			AmountNgn: it.AmountNgn,
		})
	}
	return out
}

func toZoneResponse(z *domain.ZoneConfig) *zoneResponse {
	if z == nil {
		return nil
	}
	resp := &zoneResponse{
		Code:             z.Code,
		Name:             z.Name,
		Kind:             string(z.Kind),
		IsCity:           domain.IsCityZone(z.Code),
		IsSuspended:      z.IsSuspended,
		SuspensionReason: z.SuspensionReason,
	}
	for _, t := range z.DeliveryTypesAllowed {
		resp.DeliveryTypesAllowed = append(resp.DeliveryTypesAllowed, string(t))
	}
	return resp
}

func toResolveZoneResponse(z *domain.ZoneConfig, catalog string) resolveZoneResponse {
	return resolveZoneResponse{
		Matched: z != nil && catalog != zone.TierNone,
		Catalog: catalog,
		Zone:    toZoneResponse(z),
	}
}

// nonNil keeps JSON arrays as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
