package ports

import (
	"context"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

// ZoneCatalogRepository loads the zone catalog. Only active zones are returned,
// in catalog order.
type ZoneCatalogRepository interface {
	LoadCatalog(ctx context.Context) (domain.ZoneCatalog, error)
}

// SettingsRepository loads the operator-tunable pricing settings.
// Returns domain.ErrSettingsNotFound when no settings document exists.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.GlobalSettings, error)
}

// RiderAvailabilityProvider returns the live rider snapshot for a zone.
// An empty zoneCode asks for the global snapshot.
type RiderAvailabilityProvider interface {
	Snapshot(ctx context.Context, zoneCode string) (domain.RiderAvailability, error)
}
