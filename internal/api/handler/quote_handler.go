package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

// QuoteHandler handles HTTP requests for delivery quotes.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Create handles POST /v1/quotes.
//
// A validated request always yields 200: engine failures come back as a
// flat-rate quote carrying a fallback block.
//
// @Summary      Quote delivery options for a cart
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Cart and delivery details"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	quote := h.service.GetQuote(c.Request().Context(), toQuoteInput(req))
	return c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// ResolveZone handles GET /v1/zones/resolve.
//
// @Summary      Resolve the delivery zone of a coordinate
// @Tags         zones
// @Produce      json
// @Param        lat  query     number  true  "Latitude"
// @Param        lng  query     number  true  "Longitude"
// @Success      200  {object}  resolveZoneResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/zones/resolve [get]
func (h *QuoteHandler) ResolveZone(c echo.Context) error {
	var q resolveZoneQuery
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &q.Lat).
		MustFloat64("lng", &q.Lng).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "lat and lng must be numbers"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	z, catalog := h.service.ResolveZone(c.Request().Context(), domain.Coordinates{Lat: q.Lat, Lng: q.Lng})
	return c.JSON(http.StatusOK, toResolveZoneResponse(z, catalog))
}
