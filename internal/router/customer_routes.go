package router

import (
	"github.com/labstack/echo/v4"

	"github.com/turfer/turfer-api/internal/handler"
	"github.com/turfer/turfer-api/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT; any authenticated role may book. The
// middleware verifies the token and places the caller's email, name and
// role on the request context.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret, adminEmail string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret, adminEmail),
		middleware.RequireRole("USER", "ADMIN"),
	)
	// Place a booking for a turf slot.
	g.POST("/bookings", h.CreateBooking)
	// View one of the caller's own bookings, used by the confirmation page.
	g.GET("/bookings/:id", h.GetBooking)
	// The caller's bookings partitioned into upcoming and past.
	g.GET("/my-bookings", h.ListMyBookings)
}

// RegisterMe registers profile endpoints under /v1. The saved pincode
// drives the default area filter on the browse page.
func RegisterMe(e *echo.Echo, h *handler.MeHandler, jwtSecret, adminEmail string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret, adminEmail),
		middleware.RequireRole("USER", "ADMIN"),
	)
	g.GET("/me", h.Me)
	g.GET("/me/pincode", h.GetPincode)
	g.PUT("/me/pincode", h.PutPincode)
}
