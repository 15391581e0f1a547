package routes

import (
	"net/http"
	"strings"
	"time"

	"voyago/config"
	"voyago/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	PlanHandler    *handlers.PlanHandler
	BookingHandler *handlers.BookingHandler
}

// RegisterAIRoutes registers the planner endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/plan", hb.PlanHandler.CreatePlanHandler)
	}
}

// RegisterBookingRoutes registers the booking lookup helper endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:id", hb.BookingHandler.GetBookingByIDHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes applies CORS and wires every route group.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAIRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
