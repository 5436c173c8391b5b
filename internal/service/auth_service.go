package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shippy/shipment-tracker/internal/model"
	"github.com/shippy/shipment-tracker/internal/repository"
	"github.com/shippy/shipment-tracker/internal/utils"
)

// RegisterInput carries the registration form. Field presence is enforced
// at the boundary before the service is invoked.
type RegisterInput struct {
	Name                 string
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	Usertype             string
}

// AuthResult is the payload returned by register and login: the public
// user view plus a freshly minted access token.
type AuthResult struct {
	User        model.PublicUser `json:"user"`
	AccessToken string           `json:"access_token"`
}

// Auth owns registration, login and the token mint/verify/refresh/logout
// decisions. Tokens are stateless: no session store exists and logout has
// no server-side enforcement effect.
type Auth struct {
	users      UserStore
	secret     string
	bcryptCost int
}

func NewAuth(users UserStore, secret string, bcryptCost int) *Auth {
	return &Auth{users: users, secret: secret, bcryptCost: bcryptCost}
}

// Register creates a user and mints its first access token. The email
// conflict takes precedence when both email and username collide. The
// usertype is stored as supplied, admin included; there is no gating on
// who may register as admin.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	if in.Password != in.PasswordConfirmation {
		return AuthResult{}, ErrPasswordMismatch
	}
	usertype, ok := model.ParseUserType(in.Usertype)
	if !ok {
		return AuthResult{}, ErrInvalidUsertype
	}

	// Pre-check fixes the conflict precedence; the unique indexes in the
	// store remain the authoritative guard against racing registrations.
	existing, err := a.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err == nil {
		if existing.Email == in.Email {
			return AuthResult{}, repository.ErrEmailExists
		}
		return AuthResult{}, repository.ErrUsernameExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	hash, err := utils.HashPassword(in.Password, a.bcryptCost)
	if err != nil {
		return AuthResult{}, err
	}
	name := in.Name
	if name == "" {
		name = in.Username
	}
	u := model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Name:         name,
		Usertype:     usertype,
	}
	if err := a.users.Create(ctx, &u); err != nil {
		return AuthResult{}, err
	}

	token, err := utils.NewAccessToken(a.secret, u)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u.Public(), AccessToken: token}, nil
}

// Login verifies the credentials and mints a token from the matched
// user's current claims. Unknown email and wrong password return the
// identical error.
func (a *Auth) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := utils.NewAccessToken(a.secret, u)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u.Public(), AccessToken: token}, nil
}

// VerifyAccessToken validates signature and expiry and returns the claim
// set. No persistence lookup happens here.
func (a *Auth) VerifyAccessToken(token string) (utils.Claims, error) {
	return utils.ParseAccessToken(a.secret, token)
}

// RefreshToken verifies the presented token and mints a new one carrying
// the same claims with a fresh one-hour expiry. The user record is not
// re-read.
func (a *Auth) RefreshToken(token string) (string, error) {
	claims, err := utils.ParseAccessToken(a.secret, token)
	if err != nil {
		return "", err
	}
	return utils.RemintAccessToken(a.secret, claims)
}

// Logout verifies the token is currently valid and returns. Because
// tokens carry no server-side state, the token stays usable until its
// natural expiry.
func (a *Auth) Logout(token string) error {
	_, err := utils.ParseAccessToken(a.secret, token)
	return err
}
