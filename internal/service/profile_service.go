package service

import (
	"context"

	"github.com/shippy/shipment-tracker/internal/model"
)

// Profiles is the thin partial-update service for a user's mutable
// fields. Email, username and usertype are immutable here; only name,
// phone and address can change, and only for the caller's own record.
type Profiles struct {
	users UserStore
}

func NewProfiles(users UserStore) *Profiles { return &Profiles{users: users} }

// Get returns the public view of the caller's own profile.
func (p *Profiles) Get(ctx context.Context, userID string) (model.PublicUser, error) {
	u, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}
	return u.Public(), nil
}

// Update applies the supplied fields. A nil pointer means "leave as is";
// an empty string clears the field. updated_at is refreshed on every
// successful update regardless of which fields changed.
func (p *Profiles) Update(ctx context.Context, userID string, name, phone, address *string) (model.PublicUser, error) {
	u, err := p.users.UpdateProfile(ctx, userID, name, phone, address)
	if err != nil {
		return model.PublicUser{}, err
	}
	return u.Public(), nil
}
