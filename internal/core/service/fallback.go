package service

import (
	"errors"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/eta"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

// FallbackOptionID identifies the synthetic option of a degraded quote.
const FallbackOptionID domain.DeliveryTier = "fallback"

const (
	TagFallback        = "frontend_fallback"
	fallbackMinMinutes = 45
	fallbackMaxMinutes = 90
)

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, errQuotePanic):
		return "panic"
	case errors.Is(err, domain.ErrNonFiniteAmount):
		return "non_finite"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return "invalid_coordinates"
	default:
		return "error"
	}
}

// fallbackQuote is the flat-rate answer served when computation fails.
func (s *QuoteService) fallbackQuote(in ports.QuoteInput, reason string, cause error) *domain.Quote {
	var price int64 = domain.FallbackFeeNgn
	if in.SubtotalNgn.GreaterThan(freeShippingThreshold) {
		price = 0
	}

	option := domain.DeliveryOption{
		ID:       FallbackOptionID,
		Label:    domain.TierStandard.Label(),
		PriceNgn: price,
		PriceBreakdown: []domain.PriceBreakdownItem{
			{Code: domain.LineBase, Label: "Flat delivery fee", AmountNgn: price},
		},
		ETA: domain.ETAWindow{
			Min:      fallbackMinMinutes,
			Max:      fallbackMaxMinutes,
			Friendly: eta.FormatWindow(fallbackMinMinutes, fallbackMaxMinutes),
		},
		AppliedRules: []string{TagFallback},
		Tags:         []string{TagFallback},
		IsAvailable:  true,
	}

	return &domain.Quote{
		ID:              s.newID(),
		CartID:          in.CartID,
		Currency:        currencyNGN,
		DeliveryOptions: []domain.DeliveryOption{option},
		GrandTotalNgn:   price,
		GeneratedAt:     s.now(),
		Fallback:        &domain.FallbackInfo{Reason: reason, Error: cause.Error()},
	}
}
