package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/service"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Auth *service.Auth
}

func NewAuthHandler(cfg config.Config, auth *service.Auth) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: auth}
}

// ----- DTOs -----

type registerReq struct {
	Name                 string `json:"name"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Usertype             string `json:"usertype"` // user | admin
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshResp struct {
	AccessToken string `json:"access_token"`
}

// bearerToken extracts the raw token from the Authorization header. The
// second return value is false when the header is absent or malformed.
func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// Register: create user and return its first access token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" ||
		req.PasswordConfirmation == "" || req.Name == "" || req.Usertype == "" {
		return respondErr(c, http.StatusBadRequest, "All fields are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.Auth.Register(ctx, service.RegisterInput{
		Name:                 req.Name,
		Username:             req.Username,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Usertype:             req.Usertype,
	})
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusCreated, "User registered successfully", result)
}

// Login: verify credentials and return a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return respondErr(c, http.StatusBadRequest, "Email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Login successful", result)
}

// Refresh: mint a new token from a still-valid one. The claims are carried
// over unchanged with a fresh expiry; the user record is not consulted.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "No token provided")
	}
	fresh, err := h.Auth.RefreshToken(token)
	if err != nil {
		return fail(c, err, h.Cfg.IsDevelopment())
	}
	return respond(c, http.StatusOK, "Token refreshed successfully", refreshResp{AccessToken: fresh})
}

// Logout: verify-only. Stateless tokens have no revocation list, so a
// logged-out token stays usable until its natural expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "No token provided")
	}
	if err := h.Auth.Logout(token); err != nil {
		return respondErr(c, http.StatusUnauthorized, "Invalid token")
	}
	return respond(c, http.StatusOK, "Logout successful", nil)
}
