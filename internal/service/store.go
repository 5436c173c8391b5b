package service

import (
	"context"

	"github.com/shippy/shipment-tracker/internal/model"
)

// UserStore is the persistence contract the auth and profile services
// depend on. The MySQL implementation lives in internal/repository; tests
// substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmailOrUsername(ctx context.Context, email, username string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, id string, name, phone, address *string) (model.User, error)
}

// ShipmentStore is the persistence contract for the shipment lifecycle.
type ShipmentStore interface {
	Create(ctx context.Context, s *model.Shipment) error
	GetByID(ctx context.Context, id string) (model.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (model.Shipment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Shipment, error)
	ListAll(ctx context.Context) ([]model.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status model.ShipmentStatus) (model.Shipment, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, ownerID string, all bool) (model.ShipmentStats, error)
}
