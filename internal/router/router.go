package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/handler"    // import the handlers that implement business logic
	"github.com/shippy/shipment-tracker/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/shippy/shipment-tracker/internal/service"
)

// RegisterRoutes wires every endpoint of the API onto the provided Echo
// instance. Route shape:
//
//	POST /auth/register                      public
//	POST /auth/dashboard/login               public
//	POST /auth/dashboard/refresh             bearer (handler reads the raw token)
//	POST /auth/dashboard/logout              bearer (handler reads the raw token)
//	GET/PATCH /profile                       bearer
//	GET  /shipments/track/:trackingNumber    public, Redis-cached
//	POST/GET /shipments, GET /shipments/stats, GET/DELETE /shipments/:id   bearer
//	PATCH /shipments/:id/status              bearer + admin
//	GET  /healthz                            public
func RegisterRoutes(e *echo.Echo, cfg config.Config, auth *service.Auth,
	a *handler.AuthHandler, p *handler.ProfileHandler, s *handler.ShipmentHandler,
	rdb *redis.Client) {

	e.GET("/healthz", handler.Health)

	// Auth endpoints. Refresh and logout consume the raw bearer token
	// themselves (they re-mint or verify-only), so they carry no JWTAuth
	// middleware; a missing or invalid token still yields 401.
	ag := e.Group("/auth")
	ag.POST("/register", a.Register)
	ag.POST("/dashboard/login", a.Login)
	ag.POST("/dashboard/refresh", a.Refresh)
	ag.POST("/dashboard/logout", a.Logout)

	// Public tracking lookup, cached in Redis when available.
	e.GET("/shipments/track/:trackingNumber", s.Track,
		middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	// Profile endpoints: the subject is always the authenticated caller.
	pg := e.Group("/profile")
	pg.Use(middleware.JWTAuth(auth))
	pg.GET("", p.Get)
	pg.PATCH("", p.Update)

	// Shipment endpoints. Note /shipments/stats is registered on the group
	// before the :id routes; Echo resolves static segments first either way.
	sg := e.Group("/shipments")
	sg.Use(middleware.JWTAuth(auth))
	sg.POST("", s.Create)
	sg.GET("", s.List)
	sg.GET("/stats", s.Stats)
	sg.GET("/:id", s.GetByID)
	sg.PATCH("/:id/status", s.UpdateStatus, middleware.RequireAdmin())
	sg.DELETE("/:id", s.Delete)
}
