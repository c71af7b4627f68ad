package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/turfer/turfer-api/internal/booking"
    "github.com/turfer/turfer-api/internal/model"
    "github.com/turfer/turfer-api/internal/queue"
    "github.com/turfer/turfer-api/internal/repository"
    queue_publisher "github.com/turfer/turfer-api/internal/service"
    "github.com/turfer/turfer-api/internal/slot"
    "github.com/turfer/turfer-api/internal/utils"
)

// CustomerHandler groups the repositories required to create bookings
// and list a user's own reservations. All methods assume JWT
// authentication has already been performed by middleware.
type CustomerHandler struct {
    TurfRepo    *repository.TurfRepo
    BookingRepo *repository.BookingRepo
}

// NewCustomerHandler constructs a CustomerHandler with the provided
// repositories. All dependencies must be non-nil.
func NewCustomerHandler(turfRepo *repository.TurfRepo, bookingRepo *repository.BookingRepo) *CustomerHandler {
    if turfRepo == nil || bookingRepo == nil {
        panic("nil repository passed to NewCustomerHandler")
    }
    return &CustomerHandler{TurfRepo: turfRepo, BookingRepo: bookingRepo}
}

// CreateBooking handles POST /v1/bookings. The request body carries the
// turf id, calendar date and slot label. The handler re-validates
// everything the UI claims to have checked: the turf must exist, the
// label must belong to the turf's current catalog, and the slot must
// still be free at insert time. A lost race surfaces as 409 so the
// client can re-query availability and prompt for another slot; nothing
// is retried automatically.
func (h *CustomerHandler) CreateBooking(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        TurfID uint64 `json:"turf_id"`
        Date   string `json:"date"`
        Time   string `json:"time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.TurfID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "turf_id is required"})
    }
    date, err := utils.ParseDate(body.Date)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    label, err := utils.ParseSlotLabel(body.Time)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx := c.Request().Context()
    turf, err := h.TurfRepo.GetByID(ctx, body.TurfID)
    if err != nil {
        if errors.Is(err, repository.ErrTurfNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if !slot.Contains(turf.TimeSlots, label) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "time slot not offered by this turf"})
    }

    b := &model.Booking{
        Reference:  uuid.NewString(),
        TurfID:     turf.ID,
        UserEmail:  email,
        Date:       date,
        Time:       label,
        AmountPaid: strconv.FormatUint(uint64(turf.PricePerHour), 10),
    }
    if err := h.BookingRepo.Create(ctx, b); err != nil {
        if errors.Is(err, repository.ErrSlotTaken) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "slot already booked, pick another"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
    }

    // Announce the booking off the request path; a publish failure is
    // logged inside the publisher and does not affect the response.
    go func(ev queue.BookingCreatedEvent) {
        pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queue_publisher.PublishBookingCreated(pubCtx, ev)
    }(queue.BookingCreatedEvent{
        BookingID:  b.ID,
        Reference:  b.Reference,
        TurfID:     turf.ID,
        TurfName:   turf.Name,
        UserEmail:  b.UserEmail,
        Date:       b.Date,
        Time:       b.Time,
        AmountPaid: b.AmountPaid,
        CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{
        "item":      b,
        "turf_name": turf.Name,
    })
}

// GetBooking handles GET /v1/bookings/:id. It returns one booking for
// the confirmation view. A booking belonging to a different user is
// reported as not found rather than forbidden, so ids cannot be probed.
func (h *CustomerHandler) GetBooking(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    b, err := h.BookingRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if b.UserEmail != email {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": b})
}

// ListMyBookings handles GET /v1/my-bookings?sort=asc|desc. It returns
// the caller's bookings partitioned into upcoming and past relative to
// the current instant. A booking starting exactly now counts as
// upcoming. Sort applies within each partition; default ascending.
func (h *CustomerHandler) ListMyBookings(c echo.Context) error {
    email, err := currentEmail(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    list, err := h.BookingRepo.ListByUser(c.Request().Context(), email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }
    asc := c.QueryParam("sort") != "desc"
    upcoming, past := booking.Partition(list, time.Now().UTC())
    return c.JSON(http.StatusOK, echo.Map{
        "upcoming": booking.SortByTime(upcoming, asc),
        "past":     booking.SortByTime(past, asc),
    })
}
