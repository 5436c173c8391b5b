package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shippy/shipment-tracker/internal/model"
)

var testUser = model.User{
	ID:       "u-123",
	Email:    "a@x.com",
	Username: "a",
	Name:     "Alice",
	Usertype: model.UserTypeUser,
}

func TestNewAndParseAccessToken(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	tok, err := NewAccessToken(secret, testUser)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := ParseAccessToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.ID != testUser.ID || claims.Email != testUser.Email ||
		claims.Username != testUser.Username || claims.Name != testUser.Name ||
		claims.Usertype != testUser.Usertype {
		t.Fatalf("claims mismatch: got %+v", claims)
	}

	exp := claims.ExpiresAt.Time
	iat := claims.IssuedAt.Time
	if got := exp.Sub(iat); got != AccessTokenTTL {
		t.Fatalf("lifetime mismatch: got %s want %s", got, AccessTokenTTL)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", testUser)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := ParseAccessToken("wrong-secret", tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseAccessToken("k", "not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	// Sign a token whose expiry is already in the past but whose
	// signature is otherwise valid.
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		ID:       testUser.ID,
		Email:    testUser.Email,
		Username: testUser.Username,
		Name:     testUser.Name,
		Usertype: testUser.Usertype,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseAccessToken(secret, raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestRemintAccessToken_ExtendsFromNow(t *testing.T) {
	t.Parallel()

	secret := "secret"
	orig, err := NewAccessToken(secret, testUser)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	origClaims, err := ParseAccessToken(secret, orig)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}

	time.Sleep(1100 * time.Millisecond) // NumericDate has second precision

	fresh, err := RemintAccessToken(secret, origClaims)
	if err != nil {
		t.Fatalf("RemintAccessToken error: %v", err)
	}
	freshClaims, err := ParseAccessToken(secret, fresh)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}

	if freshClaims.ID != origClaims.ID || freshClaims.Email != origClaims.Email ||
		freshClaims.Username != origClaims.Username || freshClaims.Usertype != origClaims.Usertype {
		t.Fatalf("identity fields changed across refresh: %+v vs %+v", freshClaims, origClaims)
	}
	if !freshClaims.ExpiresAt.Time.After(origClaims.ExpiresAt.Time) {
		t.Fatalf("refresh did not extend validity: %s vs %s",
			freshClaims.ExpiresAt.Time, origClaims.ExpiresAt.Time)
	}
}

func TestClaims_IsAdmin(t *testing.T) {
	t.Parallel()

	if (Claims{Usertype: model.UserTypeUser}).IsAdmin() {
		t.Fatal("user claims reported admin")
	}
	if !(Claims{Usertype: model.UserTypeAdmin}).IsAdmin() {
		t.Fatal("admin claims not reported admin")
	}
}
