// This file defines handlers for the public browsing API: listing turfs
// by postal code, turf details and slot availability. These routes do
// not require authentication; sensitive fields (the owner email) are
// filtered from responses.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/turfer/turfer-api/internal/repository"
    "github.com/turfer/turfer-api/internal/slot"
    "github.com/turfer/turfer-api/internal/utils"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing and availability queries.
type PublicHandler struct {
    TurfRepo    *repository.TurfRepo
    BookingRepo *repository.BookingRepo
}

// NewPublicHandler constructs a PublicHandler. Both repositories must
// be non-nil.
func NewPublicHandler(turfRepo *repository.TurfRepo, bookingRepo *repository.BookingRepo) *PublicHandler {
    if turfRepo == nil || bookingRepo == nil {
        panic("nil repository passed to NewPublicHandler")
    }
    return &PublicHandler{TurfRepo: turfRepo, BookingRepo: bookingRepo}
}

// GetTurfs handles GET /v1/turfs?pincode=400058&q=arena. Pincode is
// required and matched exactly; q optionally narrows the result to
// turfs whose name or address contains the query, case-insensitively.
func (h *PublicHandler) GetTurfs(c echo.Context) error {
    pincode := strings.TrimSpace(c.QueryParam("pincode"))
    if pincode == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "pincode is required"})
    }
    turfs, err := h.TurfRepo.ListByPincode(c.Request().Context(), pincode)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
    out := make([]publicTurf, 0, len(turfs))
    for _, t := range turfs {
        if q != "" &&
            !strings.Contains(strings.ToLower(t.Name), q) &&
            !strings.Contains(strings.ToLower(t.Address), q) {
            continue
        }
        out = append(out, toPublicTurf(t))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetTurf handles GET /v1/turfs/:id and returns one sanitized listing.
func (h *PublicHandler) GetTurf(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
    }
    t, err := h.TurfRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrTurfNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toPublicTurf(t)})
}

// GetAvailability handles GET /v1/turfs/:id/availability?date=YYYY-MM-DD.
// It returns the turf's catalog, the labels already booked on that date
// and the remaining free labels in catalog order. A failed bookings
// read is a 500, never an empty booked list: treating a failed lookup
// as "everything is available" would invite double-booking.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
    }
    date, err := utils.ParseDate(c.QueryParam("date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    ctx := c.Request().Context()
    t, err := h.TurfRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrTurfNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    booked, err := h.BookingRepo.BookedTimes(ctx, id, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "turf_id":   t.ID,
        "date":      date,
        "catalog":   t.TimeSlots,
        "booked":    booked,
        "available": slot.Available(t.TimeSlots, booked),
    })
}
