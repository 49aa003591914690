package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-floorplan/config"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/hub"
	"github.com/yeremiapane/restaurant-floorplan/queue"
	"github.com/yeremiapane/restaurant-floorplan/router"
	"github.com/yeremiapane/restaurant-floorplan/store"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
}

func main() {
	cfg := config.Load()
	utils.InitLoggerWithOutput(os.Stdout, os.Stderr, cfg.LogLevel)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	floorHub := hub.NewHub()
	notifiers := floorplan.Fanout{floorHub}
	if publisher := queue.NewPublisher(cfg.AMQPURL, cfg.AMQPQueue); publisher != nil {
		notifiers = append(notifiers, publisher)
		utils.InfoLogger.Printf("Publishing floor events to queue %s", cfg.AMQPQueue)
	}

	rdb := config.NewRedisClient(cfg)
	if rdb != nil {
		defer rdb.Close()
		utils.InfoLogger.Printf("Response cache enabled (ttl=%s)", cfg.CacheTTL)
	} else if cfg.RedisAddr != "" {
		utils.ErrorLogger.Printf("Redis at %s unreachable, running without cache", cfg.RedisAddr)
	}

	planner := floorplan.NewPlanner(st, notifiers)

	// Setup router
	r := router.SetupRouter(router.Options{
		Planner:         planner,
		Hub:             floorHub,
		Redis:           rdb,
		CacheTTL:        cfg.CacheTTL,
		CORSOrigin:      cfg.CORSOrigin,
		RateLimit:       cfg.RateLimit,
		RateInterval:    cfg.RateInterval,
		WritesPerSecond: 5,
	})

	utils.InfoLogger.Printf("Listening on port %s (store=%s)", cfg.Port, cfg.StoreDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// openStore builds the store named by STORE_DRIVER, seeding the demo floor when asked.
func openStore(cfg *config.Config) (floorplan.Store, error) {
	today := utils.Today()

	if cfg.StoreDriver == "memory" {
		if !cfg.SeedMockData {
			return store.NewMemoryStore(nil, nil), nil
		}
		utils.InfoLogger.Println("Using in-memory store with mock floor")
		return store.NewMemoryStore(store.MockTables(), store.MockReservations(today)), nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	gs := store.NewGormStore(db)
	if err := gs.Migrate(); err != nil {
		return nil, err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if cfg.SeedMockData {
		seeded, err := gs.SeedIfEmpty(store.MockTables(), store.MockReservations(today))
		if err != nil {
			return nil, err
		}
		if seeded {
			utils.InfoLogger.Println("Seeded empty database with mock floor")
		}
	}
	return gs, nil
}
