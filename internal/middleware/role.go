package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAdmin returns a middleware function that enforces that the
// authenticated caller carries the admin role.  It assumes JWTAuth has
// already stored the claim set in the context; a missing claim set is
// treated as unauthenticated.  Non-admin callers are rejected with 403
// before the handler runs.
func RequireAdmin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            claims, ok := ClaimsFrom(c)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "success": false, "message": "Unauthorized",
                })
            }
            if !claims.IsAdmin() {
                return c.JSON(http.StatusForbidden, echo.Map{
                    "success": false, "message": "Forbidden: Admin access required",
                })
            }
            return next(c)
        }
    }
}
