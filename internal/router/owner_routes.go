package router

import (
	"github.com/labstack/echo/v4"

	"github.com/turfer/turfer-api/internal/handler"
	"github.com/turfer/turfer-api/internal/middleware"
)

// RegisterOwner registers the turf-owner console under /v1/owner. There
// is no separate OWNER role claim: ownership is proven by the turf row
// whose owner_email matches the authenticated email, so the handlers
// resolve the caller's turf on every request. Any authenticated user
// may hit these routes; a user without a turf gets 404.
func RegisterOwner(e *echo.Echo, h *handler.OwnerHandler, jwtSecret, adminEmail string) {
	g := e.Group(
		"/v1/owner",
		middleware.JWTAuth(jwtSecret, adminEmail),
		middleware.RequireRole("USER", "ADMIN"),
	)
	// The caller's own listing, with owner fields included.
	g.GET("/turf", h.GetMyTurf)
	// Edit the listing: address, images, price, slot catalog.
	g.PUT("/turf", h.UpdateMyTurf)
	// Bookings on the caller's turf, filterable and partitioned.
	g.GET("/bookings", h.ListTurfBookings)
	// Record a walk-in booking taken offline.
	g.POST("/bookings", h.CreateManualBooking)
	// Remove a booking from the caller's turf.
	g.DELETE("/bookings/:id", h.DeleteBooking)
}
