package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-dining/controllers"
	"github.com/yeremiapane/hotel-dining/metrics"
	"github.com/yeremiapane/hotel-dining/middlewares"
	"gorm.io/gorm"
)

type Options struct {
	CORSOrigins []string
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middlewares.RateLimiter
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigins))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.RateLimit())
	}

	guestCtrl := controllers.NewGuestController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Front desk
	r.GET("/guests", guestCtrl.GetGuestByRoom)
	r.GET("/menu", menuCtrl.SearchMenu)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/availability", tableCtrl.GetAvailability)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// Kitchen dashboard
	r.GET("/reservations", reservationCtrl.GetReservations)
	r.PATCH("/reservations/:id/status", reservationCtrl.UpdateReservationStatus)
	r.POST("/reservations/:id/advance", reservationCtrl.AdvanceReservation)

	return r
}
