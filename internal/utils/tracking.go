package utils

import (
    "crypto/rand" // secure random source for tracking numbers
    "encoding/hex"
    "strings"
)

// trackingPrefix is prepended to every generated tracking number so the
// public identifier is recognizably ours.
const trackingPrefix = "SHP-"

// NewTrackingNumber returns a new public tracking identifier of the form
// SHP-XXXXXXXXXXXX (12 uppercase hex characters from 6 random bytes).
// Uniqueness is enforced by the shipments.tracking_number unique index;
// 48 bits of randomness keeps collisions out of practical reach.
func NewTrackingNumber() (string, error) {
    buf := make([]byte, 6)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return trackingPrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
