package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

// AdminHandler exposes read-only views of the cached pricing inputs.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type catalogResponse struct {
	CityZones     []domain.ZoneConfig           `json:"city_zones"`
	RegionalZones []domain.ZoneConfig           `json:"regional_zones"`
	CrossZoneFees map[string]map[string]int64   `json:"cross_zone_fees"`
	Hubs          map[string]domain.Coordinates `json:"hubs"`
}

type refreshResponse struct {
	Caches []ports.CacheStatus `json:"caches"`
}

// Settings handles GET /v1/admin/settings.
//
// @Summary      Show the global pricing settings in use
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.GlobalSettings
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/settings [get]
func (h *AdminHandler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Settings(c.Request().Context()))
}

// Zones handles GET /v1/admin/zones.
//
// @Summary      Show the zone catalog in use
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  catalogResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/zones [get]
func (h *AdminHandler) Zones(c echo.Context) error {
	cat := h.service.Catalog(c.Request().Context())
	resp := catalogResponse{
		CityZones:     cat.CityZones,
		RegionalZones: cat.RegionalZones,
		CrossZoneFees: cat.CrossZoneFees,
		Hubs:          cat.Hubs,
	}
	if resp.CityZones == nil {
		resp.CityZones = []domain.ZoneConfig{}
	}
	if resp.RegionalZones == nil {
		resp.RegionalZones = []domain.ZoneConfig{}
	}
	return c.JSON(http.StatusOK, resp)
}

// RefreshCaches handles POST /v1/admin/cache/refresh.
//
// Failed refreshes keep serving the previous value; the error is reported per cache.
//
// @Summary      Force a reload of the settings and zone caches
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/cache/refresh [post]
func (h *AdminHandler) RefreshCaches(c echo.Context) error {
	return c.JSON(http.StatusOK, refreshResponse{Caches: h.service.Refresh(c.Request().Context())})
}
