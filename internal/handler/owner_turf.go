package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/turfer/turfer-api/internal/booking"
	"github.com/turfer/turfer-api/internal/model"
	"github.com/turfer/turfer-api/internal/repository"
	"github.com/turfer/turfer-api/internal/slot"
	"github.com/turfer/turfer-api/internal/utils"
)

// OwnerHandler serves the turf-owner console: listing editing, booking
// oversight and manual walk-in bookings. Every operation resolves the
// owner's turf from the authenticated email, so an owner can only ever
// touch their own venue.
type OwnerHandler struct {
	TurfRepo    *repository.TurfRepo
	BookingRepo *repository.BookingRepo
}

// NewOwnerHandler constructs an OwnerHandler. All dependencies must be
// non-nil.
func NewOwnerHandler(turfRepo *repository.TurfRepo, bookingRepo *repository.BookingRepo) *OwnerHandler {
	if turfRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{TurfRepo: turfRepo, BookingRepo: bookingRepo}
}

func (h *OwnerHandler) myTurf(c echo.Context) (*model.Turf, error) {
	email, err := currentEmail(c)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turf, err := h.TurfRepo.GetByOwnerEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "no turf registered for this account"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return turf, nil
}

// GetMyTurf handles GET /v1/owner/turf. It returns the full turf record
// including the owner email, since the caller is the owner.
func (h *OwnerHandler) GetMyTurf(c echo.Context) error {
	turf, err := h.myTurf(c)
	if turf == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"item": turf})
}

// UpdateMyTurf handles PUT /v1/owner/turf. Owners may change the
// listing fields: address, images, price and the offered time slots.
// Name, pincode and ownership are admin-managed and ignored here.
func (h *OwnerHandler) UpdateMyTurf(c echo.Context) error {
	turf, err := h.myTurf(c)
	if turf == nil {
		return err
	}
	var body struct {
		Address      string   `json:"address"`
		Images       []string `json:"images"`
		PricePerHour uint32   `json:"price_per_hour"`
		TimeSlots    []string `json:"time_slots"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "address is required"})
	}
	if body.PricePerHour == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_hour must be positive"})
	}
	slots := body.TimeSlots
	if len(slots) == 0 {
		slots = slot.DefaultSlots()
	}
	for _, s := range slots {
		if _, err := utils.ParseSlotLabel(s); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time slot " + strconv.Quote(s)})
		}
	}
	if err := h.TurfRepo.UpdateListing(c.Request().Context(), turf.OwnerEmail, body.Address, body.Images, body.PricePerHour, slots); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update turf"})
	}
	updated, err := h.TurfRepo.GetByID(c.Request().Context(), turf.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// ListTurfBookings handles GET /v1/owner/bookings. Supported query
// params: q (substring match on customer email), date (exact calendar
// date) and sort (asc|desc). Results come back partitioned into
// upcoming and past.
func (h *OwnerHandler) ListTurfBookings(c echo.Context) error {
	turf, err := h.myTurf(c)
	if turf == nil {
		return err
	}
	list, err := h.BookingRepo.ListByTurf(c.Request().Context(), turf.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	list = booking.FilterByEmail(list, c.QueryParam("q"))
	if date := c.QueryParam("date"); date != "" {
		canonical, err := utils.ParseDate(date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		list = booking.FilterByDate(list, canonical)
	}
	asc := c.QueryParam("sort") != "desc"
	upcoming, past := booking.Partition(list, time.Now().UTC())
	return c.JSON(http.StatusOK, echo.Map{
		"turf_id":  turf.ID,
		"upcoming": booking.SortByTime(upcoming, asc),
		"past":     booking.SortByTime(past, asc),
	})
}

// CreateManualBooking handles POST /v1/owner/bookings. Owners record
// walk-in or phone bookings on behalf of a customer; payment happens
// offline so the stored amount is zero. The slot still goes through the
// same conflict checks as an online booking.
func (h *OwnerHandler) CreateManualBooking(c echo.Context) error {
	turf, err := h.myTurf(c)
	if turf == nil {
		return err
	}
	var body struct {
		UserEmail string `json:"user_email"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserEmail == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_email is required"})
	}
	date, err := utils.ParseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	label, err := utils.ParseSlotLabel(body.Time)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if !slot.Contains(turf.TimeSlots, label) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time slot not offered by this turf"})
	}
	b := &model.Booking{
		Reference:  uuid.NewString(),
		TurfID:     turf.ID,
		UserEmail:  body.UserEmail,
		Date:       date,
		Time:       label,
		AmountPaid: "0",
	}
	if err := h.BookingRepo.Create(c.Request().Context(), b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot already booked, pick another"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": b})
}

// DeleteBooking handles DELETE /v1/owner/bookings/:id. The repository
// refuses to delete a booking that belongs to another turf, which maps
// to 403 here.
func (h *OwnerHandler) DeleteBooking(c echo.Context) error {
	turf, err := h.myTurf(c)
	if turf == nil {
		return err
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := h.BookingRepo.DeleteForTurf(c.Request().Context(), id, turf.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "booking belongs to another turf"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted"})
}
