package router

import (
	"github.com/labstack/echo/v4"

	"github.com/turfer/turfer-api/internal/handler"
	"github.com/turfer/turfer-api/internal/middleware"
)

// RegisterAdmin registers the platform console under /v1/admin. Every
// route requires the ADMIN role, which the token middleware grants only
// to the configured operator email.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret, adminEmail string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret, adminEmail),
		middleware.RequireRole("ADMIN"),
	)
	g.GET("/turfs", h.ListTurfs)
	g.POST("/turfs", h.CreateTurf)
	g.PUT("/turfs/:id", h.UpdateTurf)
	g.DELETE("/turfs/:id", h.DeleteTurf)
}
