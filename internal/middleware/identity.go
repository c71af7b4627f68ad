package middleware

// identity.go defines helpers shared across middleware files. The rate
// limiter keys buckets on the authenticated email when one is present
// so a signed-in user gets a stable bucket across addresses, falling
// back to "guest" for unauthenticated browse traffic.

import "github.com/labstack/echo/v4"

// userKey returns the authenticated user's email from context, or
// "guest" when the request carries no verified identity.
func userKey(c echo.Context) string {
    if v, ok := c.Get("email").(string); ok && v != "" {
        return v
    }
    return "guest"
}
