package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// pincodeTTL bounds how long a saved area pincode survives without the
// user touching it again.
const pincodeTTL = 30 * 24 * time.Hour

// MeHandler serves the authenticated user's profile and their saved
// area pincode. The pincode lives in Redis keyed by email so it follows
// the account across devices. rdb may be nil when Redis is not
// configured; pincode persistence then degrades to 503.
type MeHandler struct {
	rdb *redis.Client
}

// NewMeHandler constructs a MeHandler. A nil client is allowed.
func NewMeHandler(rdb *redis.Client) *MeHandler {
	return &MeHandler{rdb: rdb}
}

func pincodeKey(email string) string { return "pincode:" + email }

// Me handles GET /v1/me and echoes back the identity the token
// middleware extracted, including the computed role.
func (h *MeHandler) Me(c echo.Context) error {
	email, err := currentEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	name, _ := c.Get("name").(string)
	picture, _ := c.Get("picture").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, echo.Map{
		"email":   email,
		"name":    name,
		"picture": picture,
		"role":    role,
	})
}

// GetPincode handles GET /v1/me/pincode. A user who has never saved a
// pincode gets an empty string, not an error.
func (h *MeHandler) GetPincode(c echo.Context) error {
	email, err := currentEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if h.rdb == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "pincode storage unavailable"})
	}
	val, err := h.rdb.Get(c.Request().Context(), pincodeKey(email)).Result()
	if err == redis.Nil {
		return c.JSON(http.StatusOK, echo.Map{"pincode": ""})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "pincode storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"pincode": val})
}

// PutPincode handles PUT /v1/me/pincode and stores the user's preferred
// 6-digit area pincode.
func (h *MeHandler) PutPincode(c echo.Context) error {
	email, err := currentEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if h.rdb == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "pincode storage unavailable"})
	}
	var body struct {
		Pincode string `json:"pincode"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.Pincode) != 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pincode must be 6 digits"})
	}
	for _, r := range body.Pincode {
		if r < '0' || r > '9' {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "pincode must be 6 digits"})
		}
	}
	if err := h.rdb.Set(c.Request().Context(), pincodeKey(email), body.Pincode, pincodeTTL).Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "pincode storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"pincode": body.Pincode})
}
