package service

import (
	"context"
	"sync"
	"time"

	"github.com/shippy/shipment-tracker/internal/model"
	"github.com/shippy/shipment-tracker/internal/repository"
)

// fakeUserStore is an in-memory UserStore with the same uniqueness and
// sentinel-error behavior as the MySQL repository.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
		if existing.Username == u.Username {
			return repository.ErrUsernameExists
		}
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) FindByEmailOrUsername(_ context.Context, email, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var byUsername *model.User
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
		if u.Username == username {
			v := u
			byUsername = &v
		}
	}
	if byUsername != nil {
		return *byUsername, nil
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id string, name, phone, address *string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if phone != nil {
		u.Phone = *phone
	}
	if address != nil {
		u.Address = *address
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[id] = u
	return u, nil
}

// fakeShipmentStore is an in-memory ShipmentStore. Listings come back in
// reverse insertion order, matching the created_at DESC ordering of the
// real repository.
type fakeShipmentStore struct {
	mu        sync.Mutex
	shipments map[string]model.Shipment
	order     []string
}

func newFakeShipmentStore() *fakeShipmentStore {
	return &fakeShipmentStore{shipments: map[string]model.Shipment{}}
}

func (f *fakeShipmentStore) Create(_ context.Context, s *model.Shipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	s.User = model.OwnerSummary{ID: s.UserID}
	f.shipments[s.ID] = *s
	f.order = append(f.order, s.ID)
	return nil
}

func (f *fakeShipmentStore) GetByID(_ context.Context, id string) (model.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shipments[id]
	if !ok {
		return model.Shipment{}, repository.ErrShipmentNotFound
	}
	return s, nil
}

func (f *fakeShipmentStore) GetByTrackingNumber(_ context.Context, tn string) (model.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shipments {
		if s.TrackingNumber == tn {
			return s, nil
		}
	}
	return model.Shipment{}, repository.ErrShipmentNotFound
}

func (f *fakeShipmentStore) ListByOwner(_ context.Context, ownerID string) ([]model.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Shipment{}
	for i := len(f.order) - 1; i >= 0; i-- {
		if s, ok := f.shipments[f.order[i]]; ok && s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShipmentStore) ListAll(_ context.Context) ([]model.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Shipment{}
	for i := len(f.order) - 1; i >= 0; i-- {
		if s, ok := f.shipments[f.order[i]]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShipmentStore) UpdateStatus(_ context.Context, id string, status model.ShipmentStatus) (model.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shipments[id]
	if !ok {
		return model.Shipment{}, repository.ErrShipmentNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	f.shipments[id] = s
	return s, nil
}

func (f *fakeShipmentStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.shipments[id]; !ok {
		return repository.ErrShipmentNotFound
	}
	delete(f.shipments, id)
	return nil
}

func (f *fakeShipmentStore) CountByStatus(_ context.Context, ownerID string, all bool) (model.ShipmentStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats model.ShipmentStats
	for _, s := range f.shipments {
		if !all && s.UserID != ownerID {
			continue
		}
		stats.Total++
		switch s.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusInTransit:
			stats.InTransit++
		case model.StatusDelivered:
			stats.Delivered++
		case model.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu      sync.Mutex
	created []model.Shipment
	updated []model.Shipment
}

func (r *recordingPublisher) ShipmentCreated(_ context.Context, s model.Shipment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, s)
}

func (r *recordingPublisher) ShipmentStatusUpdated(_ context.Context, s model.Shipment, _ model.ShipmentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, s)
}
