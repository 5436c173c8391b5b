package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/shippy/shipment-tracker/internal/config"
	"github.com/shippy/shipment-tracker/internal/database"
	"github.com/shippy/shipment-tracker/internal/handler"
	"github.com/shippy/shipment-tracker/internal/queue"
	"github.com/shippy/shipment-tracker/internal/repository"
	"github.com/shippy/shipment-tracker/internal/router"
	"github.com/shippy/shipment-tracker/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the tracking-response cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; tracking cache disabled")
	}

	users := repository.NewUserRepo(db)
	shipments := repository.NewShipmentRepo(db)

	auth := service.NewAuth(users, cfg.JWTSecret, cfg.BcryptCost)
	lifecycle := service.NewShipments(shipments, queue.NewPublisher())
	profiles := service.NewProfiles(users)

	// Background consumer turning shipment events into the event log. It
	// reconnects forever on its own; failures never affect request flow.
	go func() {
		if err := queue.StartShipmentConsumer(); err != nil {
			log.Printf("shipment consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	router.RegisterRoutes(e, cfg,
		auth,
		handler.NewAuthHandler(cfg, auth),
		handler.NewProfileHandler(cfg, profiles),
		handler.NewShipmentHandler(cfg, lifecycle),
		rdb,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
