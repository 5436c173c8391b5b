package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"
    "time" // time utilities for computing expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens

    "github.com/shippy/shipment-tracker/internal/model"
)

// AccessTokenTTL is the fixed lifetime of an access token. Every mint and
// every refresh produces a token valid for exactly this long from "now".
const AccessTokenTTL = time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed payload, or expiry in the past. Callers get a
// single failure mode so the classes stay indistinguishable to clients.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity snapshot carried inside an access token. It embeds
// the registered claim set (exp, iat) and adds the user fields captured at
// mint time. Validity is purely a function of signature and expiry; the
// user record is never re-read during verification, so claims may describe
// a user that has since changed.
type Claims struct {
    jwt.RegisteredClaims
    ID       string         `json:"id"`
    Email    string         `json:"email"`
    Username string         `json:"username"`
    Name     string         `json:"name"`
    Usertype model.UserType `json:"usertype"`
}

// IsAdmin reports whether the claim set carries the admin role.
func (c Claims) IsAdmin() bool { return c.Usertype.IsAdmin() }

// NewAccessToken builds and signs an HS256 JWT carrying a snapshot of the
// given user. The expiration is AccessTokenTTL from the current UTC time.
func NewAccessToken(secret string, u model.User) (string, error) {
    now := time.Now().UTC()
    claims := Claims{
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
        },
        ID:       u.ID,
        Email:    u.Email,
        Username: u.Username,
        Name:     u.Name,
        Usertype: u.Usertype,
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// RemintAccessToken signs a new token carrying the same identity fields as
// the presented claims with a freshly computed expiry. Stale role or name
// changes are not reflected until the user logs in again.
func RemintAccessToken(secret string, c Claims) (string, error) {
    return NewAccessToken(secret, model.User{
        ID:       c.ID,
        Email:    c.Email,
        Username: c.Username,
        Name:     c.Name,
        Usertype: c.Usertype,
    })
}

// ParseAccessToken verifies signature and expiry and returns the embedded
// claims. Any failure collapses to ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Claims, error) {
    var claims Claims
    tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything other than HMAC; a token
        // carrying alg=none or an asymmetric method is foreign.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Claims{}, ErrInvalidToken
    }
    return claims, nil
}
