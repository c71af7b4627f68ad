package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/turfer/turfer-api/internal/config"
	"github.com/turfer/turfer-api/internal/database"
	"github.com/turfer/turfer-api/internal/handler"
	"github.com/turfer/turfer-api/internal/middleware"
	"github.com/turfer/turfer-api/internal/queue"
	"github.com/turfer/turfer-api/internal/repository"
	"github.com/turfer/turfer-api/internal/router"
)

func main() {
	// .env is optional; real deployments pass variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is absent; features degrade

	turfRepo := repository.NewTurfRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	e := echo.New()
	e.HideBanner = true
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(turfRepo, bookingRepo))
	router.RegisterCustomer(e, handler.NewCustomerHandler(turfRepo, bookingRepo), cfg.JWTSecret, cfg.AdminEmail)
	router.RegisterMe(e, handler.NewMeHandler(rdb), cfg.JWTSecret, cfg.AdminEmail)
	router.RegisterOwner(e, handler.NewOwnerHandler(turfRepo, bookingRepo), cfg.JWTSecret, cfg.AdminEmail)
	router.RegisterAdmin(e, handler.NewAdminHandler(turfRepo), cfg.JWTSecret, cfg.AdminEmail)

	// Drains booking.created events into the booking log. Runs its own
	// reconnect loop until the process exits.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
