// Package zone resolves coordinates to delivery zones and prices trips
// between zones.
package zone

import (
	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/geo"
)

// CityMatchRadiusKm is the fixed match radius for the city catalog. City zones
// ignore their declared radius.
const CityMatchRadiusKm = 5.0

// Catalog tier names reported by Match.
const (
	TierCity     = "city"
	TierRegional = "regional"
	TierNone     = "none"
)

// Resolver maps coordinates onto the two-tier zone catalog.
type Resolver struct {
	city     []domain.ZoneConfig
	regional []domain.ZoneConfig
}

// NewResolver creates a Resolver over the catalog's city and regional zones.
// Catalog order is kept as the tie-break between overlapping zones.
func NewResolver(catalog domain.ZoneCatalog) *Resolver {
	return &Resolver{city: catalog.CityZones, regional: catalog.RegionalZones}
}

// Resolve returns the first city zone within CityMatchRadiusKm of c, else the
// first regional zone whose radius contains c. ok is false when neither
// catalog matches, which callers treat as regional fallback pricing.
func (r *Resolver) Resolve(c domain.Coordinates) (*domain.ZoneConfig, bool) {
	z, tier := r.Match(c)
	return z, tier != TierNone
}

// Match is Resolve plus the catalog tier that produced the answer. Inactive
// zones never match.
func (r *Resolver) Match(c domain.Coordinates) (*domain.ZoneConfig, string) {
	for i := range r.city {
		if !r.city[i].IsActive {
			continue
		}
		if geo.DistanceKm(c, r.city[i].Center) <= CityMatchRadiusKm {
			return &r.city[i], TierCity
		}
	}
	for i := range r.regional {
		if !r.regional[i].IsActive {
			continue
		}
		if geo.DistanceKm(c, r.regional[i].Center) <= r.regional[i].RadiusKm {
			return &r.regional[i], TierRegional
		}
	}
	return nil, TierNone
}
