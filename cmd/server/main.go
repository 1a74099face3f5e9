package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/config"
	"github.com/iliyamo/hotel-reservation-admin/internal/database"
	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	"github.com/iliyamo/hotel-reservation-admin/internal/handler"
	"github.com/iliyamo/hotel-reservation-admin/internal/middleware"
	"github.com/iliyamo/hotel-reservation-admin/internal/queue"
	"github.com/iliyamo/hotel-reservation-admin/internal/repository"
	"github.com/iliyamo/hotel-reservation-admin/internal/router"
	queue_publisher "github.com/iliyamo/hotel-reservation-admin/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(database.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,

		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	bookingRepo := repository.NewBookingRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	customerRepo := repository.NewCustomerRepo(db)

	// Domain events flow through the in-process bus; the queue publisher
	// forwards them to RabbitMQ for external consumers, and the background
	// consumer materialises the activity log from the broker side.
	bus := event.NewBus()
	queue_publisher.AttachToBus(bus)
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()

	// Redis-backed response cache and rate limiting degrade to no-ops
	// when Redis is unreachable.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterBookings(e, handler.NewBookingHandler(bookingRepo, roomRepo, customerRepo, bus))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
