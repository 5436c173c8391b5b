package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shippy/shipment-tracker/internal/access"
	"github.com/shippy/shipment-tracker/internal/model"
	"github.com/shippy/shipment-tracker/internal/utils"
)

// EventPublisher receives best-effort notifications about shipment
// changes. Implementations must never block the request flow; errors are
// the publisher's problem, not the caller's.
type EventPublisher interface {
	ShipmentCreated(ctx context.Context, s model.Shipment)
	ShipmentStatusUpdated(ctx context.Context, s model.Shipment, previous model.ShipmentStatus)
}

// CreateShipmentInput is the shipment creation form. Required-field
// presence is enforced at the boundary; EstimatedDelivery is optional and
// accepts YYYY-MM-DD or RFC 3339.
type CreateShipmentInput struct {
	SenderName        string  `json:"senderName"`
	SenderAddress     string  `json:"senderAddress"`
	SenderCity        string  `json:"senderCity"`
	SenderZipCode     string  `json:"senderZipCode"`
	SenderCountry     string  `json:"senderCountry"`
	ReceiverName      string  `json:"receiverName"`
	ReceiverAddress   string  `json:"receiverAddress"`
	ReceiverCity      string  `json:"receiverCity"`
	ReceiverZipCode   string  `json:"receiverZipCode"`
	ReceiverCountry   string  `json:"receiverCountry"`
	PackageWeight     float64 `json:"packageWeight"`
	PackageType       string  `json:"packageType"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

// Shipments owns the shipment lifecycle: creation, ownership-scoped
// retrieval, the status state machine and statistics aggregation.
type Shipments struct {
	store  ShipmentStore
	events EventPublisher
}

// NewShipments builds the lifecycle service. events may be nil when no
// broker is configured.
func NewShipments(store ShipmentStore, events EventPublisher) *Shipments {
	return &Shipments{store: store, events: events}
}

// Create persists a new shipment owned by the authenticated caller. The
// owner is always the caller; creating on behalf of another user is not
// possible. Status defaults to pending and the tracking number is
// generated server-side.
func (s *Shipments) Create(ctx context.Context, ownerID string, in CreateShipmentInput) (model.Shipment, error) {
	var estimated *time.Time
	if in.EstimatedDelivery != "" {
		t, err := parseDeliveryDate(in.EstimatedDelivery)
		if err != nil {
			return model.Shipment{}, ErrInvalidDate
		}
		estimated = &t
	}
	trackingNumber, err := utils.NewTrackingNumber()
	if err != nil {
		return model.Shipment{}, err
	}

	sh := model.Shipment{
		ID:                uuid.NewString(),
		TrackingNumber:    trackingNumber,
		SenderName:        in.SenderName,
		SenderAddress:     in.SenderAddress,
		SenderCity:        in.SenderCity,
		SenderZipCode:     in.SenderZipCode,
		SenderCountry:     in.SenderCountry,
		ReceiverName:      in.ReceiverName,
		ReceiverAddress:   in.ReceiverAddress,
		ReceiverCity:      in.ReceiverCity,
		ReceiverZipCode:   in.ReceiverZipCode,
		ReceiverCountry:   in.ReceiverCountry,
		PackageWeight:     in.PackageWeight,
		PackageType:       in.PackageType,
		Status:            model.StatusPending,
		EstimatedDelivery: estimated,
		UserID:            ownerID,
	}
	if err := s.store.Create(ctx, &sh); err != nil {
		return model.Shipment{}, err
	}
	if s.events != nil {
		s.events.ShipmentCreated(ctx, sh)
	}
	return sh, nil
}

// List returns the shipments visible to the caller, most recent first:
// all of them for an admin, otherwise only the caller's own.
func (s *Shipments) List(ctx context.Context, usertype model.UserType, subjectID string) ([]model.Shipment, error) {
	ownerID, all := access.ListScope(usertype, subjectID)
	if all {
		return s.store.ListAll(ctx)
	}
	return s.store.ListByOwner(ctx, ownerID)
}

// GetByID fetches one shipment. Missing records fail before the
// ownership check, so a non-owner probing a random id sees 404, not 403.
func (s *Shipments) GetByID(ctx context.Context, id string, usertype model.UserType, subjectID string) (model.Shipment, error) {
	sh, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Shipment{}, err
	}
	if !access.CanViewShipment(usertype, subjectID, sh.UserID) {
		return model.Shipment{}, ErrForbidden
	}
	return sh, nil
}

// Track resolves a shipment by its public tracking number. No
// authorization applies; tracking lookup is intentionally public.
func (s *Shipments) Track(ctx context.Context, trackingNumber string) (model.Shipment, error) {
	return s.store.GetByTrackingNumber(ctx, trackingNumber)
}

// UpdateStatus moves a shipment to any of the five enumerated states.
// Only admins may call it; membership in the enumeration is the only
// guard, so any state is reachable from any other, delivered back to
// pending included.
func (s *Shipments) UpdateStatus(ctx context.Context, id, status string, usertype model.UserType) (model.Shipment, error) {
	if !access.CanUpdateStatus(usertype) {
		return model.Shipment{}, ErrForbidden
	}
	parsed, ok := model.ParseShipmentStatus(status)
	if !ok {
		return model.Shipment{}, ErrInvalidStatus
	}
	previous, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Shipment{}, err
	}
	updated, err := s.store.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return model.Shipment{}, err
	}
	if s.events != nil {
		s.events.ShipmentStatusUpdated(ctx, updated, previous.Status)
	}
	return updated, nil
}

// Delete permanently removes a shipment. Admins and the owner may
// delete; missing records fail before the ownership check.
func (s *Shipments) Delete(ctx context.Context, id string, usertype model.UserType, subjectID string) error {
	sh, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteShipment(usertype, subjectID, sh.UserID) {
		return ErrForbidden
	}
	return s.store.Delete(ctx, id)
}

// Stats aggregates the dashboard counts, scoped to the caller's own
// shipments unless the caller is an admin.
func (s *Shipments) Stats(ctx context.Context, usertype model.UserType, subjectID string) (model.ShipmentStats, error) {
	ownerID, all := access.ListScope(usertype, subjectID)
	return s.store.CountByStatus(ctx, ownerID, all)
}

// parseDeliveryDate accepts a bare date or a full RFC 3339 timestamp.
func parseDeliveryDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
