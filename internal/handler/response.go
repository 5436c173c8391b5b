package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shippy/shipment-tracker/internal/repository"
	"github.com/shippy/shipment-tracker/internal/service"
	"github.com/shippy/shipment-tracker/internal/utils"
)

// Envelope is the uniform response body. Every endpoint, success or
// failure, answers with this shape.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondErr(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// fail maps a typed core error onto its status code and stable message.
// Unclassified errors become 500; their detail is exposed only in
// development mode.
func fail(c echo.Context, err error, dev bool) error {
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return respondErr(c, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, service.ErrInvalidUsertype):
		return respondErr(c, http.StatusBadRequest, "Invalid usertype")
	case errors.Is(err, service.ErrInvalidStatus):
		return respondErr(c, http.StatusBadRequest, "Invalid status value")
	case errors.Is(err, service.ErrInvalidDate):
		return respondErr(c, http.StatusBadRequest, "Invalid estimated delivery date")
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondErr(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, utils.ErrInvalidToken):
		return respondErr(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, service.ErrForbidden):
		return respondErr(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, repository.ErrUserNotFound):
		return respondErr(c, http.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrShipmentNotFound):
		return respondErr(c, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, repository.ErrEmailExists):
		return respondErr(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, repository.ErrUsernameExists):
		return respondErr(c, http.StatusConflict, "Username already exists")
	}
	env := Envelope{Success: false, Message: "Internal server error"}
	if dev {
		env.Error = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, env)
}
