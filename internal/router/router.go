package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/turfer/turfer-api/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and uptime monitors probe this endpoint.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers unauthenticated browse endpoints. The
// PublicHandler returns sanitized turf data with owner emails stripped,
// so these routes are safe for guests. Availability is public as well:
// a user picks a slot before signing in, and only the booking itself
// requires a token.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// Browse turfs in an area; pincode is a required query param.
	e.GET("/v1/turfs", p.GetTurfs)
	// A single turf's detail page.
	e.GET("/v1/turfs/:id", p.GetTurf)
	// Free and booked slots for one turf on one date.
	e.GET("/v1/turfs/:id/availability", p.GetAvailability)
}
