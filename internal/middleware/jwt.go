package middleware // middleware contains reusable HTTP middleware functions

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer token
// issued by the identity provider and injects the identity claims into
// the request context. The provided secret must match the provider's
// signing secret. Authentication itself is delegated: this service
// never issues tokens, it only verifies them.
//
// On success the context carries:
//   "email"   – the signed-in user's email, lowercased (the tenant key)
//   "name"    – display name, may be empty
//   "picture" – avatar URL, may be empty
//   "role"    – "ADMIN" when the email matches adminEmail, else "USER"
//
// The admin check is an equality comparison against a configured value,
// surfaced as an explicit role claim rather than scattered email
// comparisons in handlers.
func JWTAuth(secret, adminEmail string) echo.MiddlewareFunc {
    adminEmail = strings.ToLower(adminEmail)
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with HS256 only; reject any other signing method.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            email, _ := claims["email"].(string)
            email = strings.ToLower(strings.TrimSpace(email))
            if email == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token has no email claim"})
            }
            name, _ := claims["name"].(string)
            picture, _ := claims["picture"].(string)

            role := "USER"
            if email == adminEmail {
                role = "ADMIN"
            }

            c.Set("email", email)
            c.Set("name", name)
            c.Set("picture", picture)
            c.Set("role", role)
            return next(c)
        }
    }
}
