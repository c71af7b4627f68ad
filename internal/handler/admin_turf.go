package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turfer/turfer-api/internal/model"
	"github.com/turfer/turfer-api/internal/repository"
	"github.com/turfer/turfer-api/internal/slot"
	"github.com/turfer/turfer-api/internal/utils"
)

// AdminHandler serves the platform-operator console: full CRUD over the
// turf catalog. Routes using it must be guarded by the ADMIN role.
type AdminHandler struct {
	TurfRepo *repository.TurfRepo
}

// NewAdminHandler constructs an AdminHandler. TurfRepo must be non-nil.
func NewAdminHandler(turfRepo *repository.TurfRepo) *AdminHandler {
	if turfRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{TurfRepo: turfRepo}
}

// turfInput is the request body shared by create and update.
type turfInput struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Pincode      string   `json:"pincode"`
	Images       []string `json:"images"`
	PricePerHour uint32   `json:"price_per_hour"`
	Amenities    []string `json:"amenities"`
	Rating       float64  `json:"rating"`
	TimeSlots    []string `json:"time_slots"`
	OwnerEmail   string   `json:"owner_email"`
}

func (in *turfInput) validate() string {
	if in.Name == "" {
		return "name is required"
	}
	if in.Address == "" {
		return "address is required"
	}
	if len(in.Pincode) != 6 {
		return "pincode must be 6 digits"
	}
	for _, r := range in.Pincode {
		if r < '0' || r > '9' {
			return "pincode must be 6 digits"
		}
	}
	if in.PricePerHour == 0 {
		return "price_per_hour must be positive"
	}
	if in.Rating < 0 || in.Rating > 5 {
		return "rating must be between 0 and 5"
	}
	if in.OwnerEmail == "" || !strings.Contains(in.OwnerEmail, "@") {
		return "owner_email must be a valid email"
	}
	for _, s := range in.TimeSlots {
		if _, err := utils.ParseSlotLabel(s); err != nil {
			return "invalid time slot " + strconv.Quote(s)
		}
	}
	return ""
}

func (in *turfInput) toModel() *model.Turf {
	slots := in.TimeSlots
	if len(slots) == 0 {
		slots = slot.DefaultSlots()
	}
	return &model.Turf{
		Name:         in.Name,
		Address:      in.Address,
		Pincode:      in.Pincode,
		Images:       in.Images,
		PricePerHour: in.PricePerHour,
		Amenities:    in.Amenities,
		Rating:       in.Rating,
		TimeSlots:    slots,
		OwnerEmail:   strings.ToLower(strings.TrimSpace(in.OwnerEmail)),
	}
}

// ListTurfs handles GET /v1/admin/turfs and returns every turf with
// owner emails included.
func (h *AdminHandler) ListTurfs(c echo.Context) error {
	list, err := h.TurfRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list, "count": len(list)})
}

// CreateTurf handles POST /v1/admin/turfs. Each owner email may be
// attached to a single turf; a second registration is rejected with
// 409.
func (h *AdminHandler) CreateTurf(c echo.Context) error {
	var in turfInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := in.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	t := in.toModel()
	if err := h.TurfRepo.Create(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrOwnerExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "owner already has a turf"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create turf"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": t})
}

// UpdateTurf handles PUT /v1/admin/turfs/:id with a full replacement of
// the editable fields.
func (h *AdminHandler) UpdateTurf(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	var in turfInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := in.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	t := in.toModel()
	t.ID = id
	if err := h.TurfRepo.Update(c.Request().Context(), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update turf"})
	}
	updated, err := h.TurfRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// DeleteTurf handles DELETE /v1/admin/turfs/:id. The turf's bookings go
// with it.
func (h *AdminHandler) DeleteTurf(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	if err := h.TurfRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete turf"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "turf deleted"})
}
