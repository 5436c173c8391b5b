// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between different failure
// scenarios without inspecting driver-specific errors. Duplicate-key
// detection lives here because the unique indexes on users.email,
// users.username and shipments.tracking_number are the authoritative
// uniqueness guard; a racing insert loses at the store, not at a
// check-then-insert gap in the application.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when an insert collides with the unique
// index on users.email. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists is returned when an insert collides with the unique
// index on users.username. Handlers translate this into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrShipmentNotFound is returned when a shipment lookup matches no row.
var ErrShipmentNotFound = errors.New("shipment not found")

// isDuplicate reports whether err is a MySQL duplicate-key error (1062)
// on an index whose name contains key. The driver does not expose a
// structured error for this, so we match on the message the same way
// the server formats it: "Duplicate entry '...' for key 'users.email'".
func isDuplicate(err error, key string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") && strings.Contains(msg, key)
}
