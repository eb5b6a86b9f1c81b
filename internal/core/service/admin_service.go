package service

import (
	"context"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

// AdminService exposes the quote engine caches to operators.
type AdminService struct {
	settings *Cache[domain.GlobalSettings]
	catalog  *Cache[domain.ZoneCatalog]
}

func NewAdminService(settings *Cache[domain.GlobalSettings], catalog *Cache[domain.ZoneCatalog]) *AdminService {
	return &AdminService{settings: settings, catalog: catalog}
}

func (s *AdminService) Settings(ctx context.Context) domain.GlobalSettings {
	return s.settings.Get(ctx)
}

func (s *AdminService) Catalog(ctx context.Context) domain.ZoneCatalog {
	return s.catalog.Get(ctx)
}

// Refresh reloads both caches. Failures are reported in the returned status and
// leave the previous value in place.
func (s *AdminService) Refresh(ctx context.Context) []ports.CacheStatus {
	_, _ = s.settings.Refresh(ctx)
	_, _ = s.catalog.Refresh(ctx)
	return []ports.CacheStatus{s.settings.Status(), s.catalog.Status()}
}
