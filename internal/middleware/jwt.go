package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/shippy/shipment-tracker/internal/service"
    "github.com/shippy/shipment-tracker/internal/utils"
)

// claimsKey is the context key under which the verified claim set is stored.
const claimsKey = "claims"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the decoded claim set into the request context.  Verification
// is a pure computation over signature and expiry; no persistence lookup
// happens, so the claims may describe a user that has since changed.  This
// middleware wraps every protected route; handlers read the caller's
// identity via ClaimsFrom.
func JWTAuth(auth *service.Auth) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            header := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(header, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "success": false, "message": "No token provided",
                })
            }
            raw := strings.TrimPrefix(header, "Bearer ")

            claims, err := auth.VerifyAccessToken(raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "success": false, "message": "Invalid or expired token",
                })
            }

            c.Set(claimsKey, claims)
            return next(c)
        }
    }
}

// ClaimsFrom retrieves the claim set stored by JWTAuth.  The second return
// value is false when the middleware did not run for this request.
func ClaimsFrom(c echo.Context) (utils.Claims, bool) {
    claims, ok := c.Get(claimsKey).(utils.Claims)
    return claims, ok
}
