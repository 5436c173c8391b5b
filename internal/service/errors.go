// Package service implements the core decision logic: credential and token
// handling, the shipment lifecycle, and profile updates. Handlers translate
// the sentinel errors defined here (plus the repository sentinels) into
// HTTP status codes; each operation fails with exactly one typed error.
package service

import "errors"

// ErrPasswordMismatch is returned when registration is attempted with a
// password that differs from its confirmation. Maps to HTTP 400.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrInvalidUsertype is returned when registration carries a usertype
// outside the closed user/admin set. Maps to HTTP 400.
var ErrInvalidUsertype = errors.New("invalid usertype")

// ErrInvalidCredentials is returned for both an unknown email and a
// failed password check so that login never reveals which part was
// wrong. Maps to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbidden is returned when role and ownership together do not
// permit the operation. Maps to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidStatus is returned when a status update names a value outside
// the five-state enumeration. Maps to HTTP 400.
var ErrInvalidStatus = errors.New("invalid status value")

// ErrInvalidDate is returned when an estimated delivery date cannot be
// parsed. Maps to HTTP 400.
var ErrInvalidDate = errors.New("invalid estimated delivery date")
