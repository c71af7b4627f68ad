package handler // handler defines http handlers

import (
    "errors"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/turfer/turfer-api/internal/model"
)

// currentEmail extracts the authenticated user's email from the echo
// context. JWTAuth middleware stores it under "email"; an empty or
// missing value means the request slipped past authentication and is
// treated as unauthorized by callers.
func currentEmail(c echo.Context) (string, error) {
    v, ok := c.Get("email").(string)
    if !ok || strings.TrimSpace(v) == "" {
        return "", errors.New("no authenticated email in context")
    }
    return v, nil
}

// publicTurf is a turf as exposed on unauthenticated routes. The owner
// email doubles as the access-control key, so it never appears here.
type publicTurf struct {
    ID           uint64   `json:"id"`
    Name         string   `json:"name"`
    Address      string   `json:"address"`
    Pincode      string   `json:"pincode"`
    Images       []string `json:"images"`
    PricePerHour uint32   `json:"price_per_hour"`
    Amenities    []string `json:"amenities"`
    Rating       float64  `json:"rating"`
    TimeSlots    []string `json:"time_slots"`
}

func toPublicTurf(t *model.Turf) publicTurf {
    return publicTurf{
        ID:           t.ID,
        Name:         t.Name,
        Address:      t.Address,
        Pincode:      t.Pincode,
        Images:       t.Images,
        PricePerHour: t.PricePerHour,
        Amenities:    t.Amenities,
        Rating:       t.Rating,
        TimeSlots:    t.TimeSlots,
    }
}
