package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/middleware"
	"github.com/shippy/shipment-tracker/internal/service"
)

// ProfileHandler bundles dependencies for the self-service profile endpoints.
type ProfileHandler struct {
	Cfg      config.Config
	Profiles *service.Profiles
}

func NewProfileHandler(cfg config.Config, profiles *service.Profiles) *ProfileHandler {
	return &ProfileHandler{Cfg: cfg, Profiles: profiles}
}

// updateProfileReq uses pointer fields so an absent key and an explicit
// empty string stay distinguishable: absent means "leave unchanged".
type updateProfileReq struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Get returns the caller's own profile. Cross-user profile access does
// not exist; the subject is always taken from the verified claims.
func (h *ProfileHandler) Get(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Profiles.Get(ctx, claims.ID)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// Update applies a partial update of name/phone/address. At least one
// field must be present.
func (h *ProfileHandler) Update(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == nil && req.Phone == nil && req.Address == nil {
		return respondErr(c, http.StatusBadRequest, "At least one field (name, phone, or address) must be provided")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Profiles.Update(ctx, claims.ID, req.Name, req.Phone, req.Address)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Profile updated successfully", profile)
}
