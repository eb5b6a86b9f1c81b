package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

// QuoteInput carries a validated quote request.
type QuoteInput struct {
	CartID         string
	SubtotalNgn    decimal.Decimal
	Items          []domain.CartItem
	PaymentMethod  domain.PaymentMethod
	PickupCoords   *domain.Coordinates // optional
	DeliveryCoords domain.Coordinates
	DeliveryType   domain.DeliveryTier
	RequestedAt    time.Time // zero = now
	StoreHubID     string    // optional
}

// QuoteService defines the quoting use cases.
type QuoteService interface {
	// GetQuote never fails: computation errors produce a fallback quote.
	GetQuote(ctx context.Context, in QuoteInput) *domain.Quote
	// ResolveZone reports which zone contains c and from which catalog tier.
	ResolveZone(ctx context.Context, c domain.Coordinates) (*domain.ZoneConfig, string)
}

// CacheStatus describes one of the read-through caches.
type CacheStatus struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	Error     string    `json:"error,omitempty"`
}

// AdminService exposes the cached engine inputs to operators.
type AdminService interface {
	Settings(ctx context.Context) domain.GlobalSettings
	Catalog(ctx context.Context) domain.ZoneCatalog
	// Refresh reloads every cache, keeping the previous value for any that fail.
	Refresh(ctx context.Context) []CacheStatus
}
