package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/middleware"
	"github.com/shippy/shipment-tracker/internal/service"
)

// ShipmentHandler bundles dependencies for shipment endpoints.
type ShipmentHandler struct {
	Cfg       config.Config
	Shipments *service.Shipments
}

func NewShipmentHandler(cfg config.Config, shipments *service.Shipments) *ShipmentHandler {
	return &ShipmentHandler{Cfg: cfg, Shipments: shipments}
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// Create persists a new shipment owned by the caller. All sender/receiver
// and package fields are required; the response lists what is missing.
func (h *ShipmentHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req service.CreateShipmentInput
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "Invalid request body")
	}
	if missing := missingShipmentFields(req); len(missing) > 0 {
		return respondErr(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shipment, err := h.Shipments.Create(ctx, claims.ID, req)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusCreated, "Shipment created successfully", shipment)
}

// List returns the caller's shipments, or every shipment for an admin.
func (h *ShipmentHandler) List(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shipments, err := h.Shipments.List(ctx, claims.Usertype, claims.ID)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Shipments retrieved successfully", shipments)
}

// GetByID returns one shipment to its owner or an admin.
func (h *ShipmentHandler) GetByID(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shipment, err := h.Shipments.GetByID(ctx, c.Param("id"), claims.Usertype, claims.ID)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Shipment retrieved successfully", shipment)
}

// Track resolves a shipment by tracking number. No authentication.
func (h *ShipmentHandler) Track(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shipment, err := h.Shipments.Track(ctx, c.Param("trackingNumber"))
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Shipment retrieved successfully", shipment)
}

// UpdateStatus moves a shipment to a new status. The admin gate is
// enforced twice: by the RequireAdmin middleware on the route and by the
// lifecycle service itself.
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Status == "" {
		return respondErr(c, http.StatusBadRequest, "Status is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shipment, err := h.Shipments.UpdateStatus(ctx, c.Param("id"), req.Status, claims.Usertype)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Shipment status updated successfully", shipment)
}

// Delete removes a shipment. Owner or admin.
func (h *ShipmentHandler) Delete(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Shipments.Delete(ctx, c.Param("id"), claims.Usertype, claims.ID); err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Shipment deleted successfully", nil)
}

// Stats returns the dashboard counts scoped to the caller (or global for
// an admin).
func (h *ShipmentHandler) Stats(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.Shipments.Stats(ctx, claims.Usertype, claims.ID)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Statistics retrieved successfully", stats)
}

// missingShipmentFields mirrors the create contract: every sender,
// receiver and package field must be present. A zero weight counts as
// missing.
func missingShipmentFields(in service.CreateShipmentInput) []string {
	var missing []string
	checks := []struct {
		name  string
		empty bool
	}{
		{"senderName", in.SenderName == ""},
		{"senderAddress", in.SenderAddress == ""},
		{"senderCity", in.SenderCity == ""},
		{"senderZipCode", in.SenderZipCode == ""},
		{"senderCountry", in.SenderCountry == ""},
		{"receiverName", in.ReceiverName == ""},
		{"receiverAddress", in.ReceiverAddress == ""},
		{"receiverCity", in.ReceiverCity == ""},
		{"receiverZipCode", in.ReceiverZipCode == ""},
		{"receiverCountry", in.ReceiverCountry == ""},
		{"packageWeight", in.PackageWeight == 0},
		{"packageType", in.PackageType == ""},
	}
	for _, check := range checks {
		if check.empty {
			missing = append(missing, check.name)
		}
	}
	return missing
}
