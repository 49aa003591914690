package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/restaurant-floorplan/controllers"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/hub"
	"github.com/yeremiapane/restaurant-floorplan/middlewares"
)

type Options struct {
	Planner *floorplan.Planner
	Hub     *hub.Hub

	// Redis is optional; without it reads are never cached.
	Redis    *redis.Client
	CacheTTL time.Duration

	CORSOrigin string
	// RateLimit requests per RateInterval seconds per client IP, 0 disables.
	RateLimit    int
	RateInterval int
	// WritesPerSecond limits floor changes across all clients, 0 disables.
	WritesPerSecond float64
}

func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if opts.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimit, opts.RateInterval).RateLimit())
	}

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	tableCtrl := controllers.NewTableController(opts.Planner)
	reservationCtrl := controllers.NewReservationController(opts.Planner)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Live feed untuk layar floor plan
	if opts.Hub != nil {
		r.GET("/ws/floor", controllers.FloorSocket(opts.Hub))
	}

	// ----------------------------------------------------------------
	//                      READ MODELS (cached)
	// ----------------------------------------------------------------
	reads := r.Group("/")
	reads.Use(middlewares.ResponseCache(opts.Redis, opts.CacheTTL))
	{
		reads.GET("/tables", tableCtrl.GetAllTables)
		reads.GET("/tables/:table_id", tableCtrl.GetTableByID)
		reads.GET("/floorplan", tableCtrl.GetFloorPlan)
		reads.GET("/floorplan/stats", tableCtrl.GetFloorStats)
		reads.GET("/reservations", reservationCtrl.GetReservations)
		reads.GET("/reservations/unassigned", reservationCtrl.GetUnassignedReservations)
	}

	// Export selalu dari data terbaru
	r.GET("/reservations/export", reservationCtrl.ExportReservations)

	// Dry run, tidak mengubah apapun
	r.POST("/reservations/:reservation_id/validate", reservationCtrl.ValidateAssignment)

	// ----------------------------------------------------------------
	//                      WRITES
	// ----------------------------------------------------------------
	writes := r.Group("/")
	if opts.WritesPerSecond > 0 {
		writes.Use(middlewares.WriteRateLimiter(opts.WritesPerSecond, int(opts.WritesPerSecond)+1))
	}
	writes.Use(middlewares.InvalidateCache(opts.Redis))
	{
		writes.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)
		writes.POST("/reservations/:reservation_id/assign", reservationCtrl.AssignTable)
	}

	return r
}
