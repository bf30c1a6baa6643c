package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/overstimulation/wellness-dashboard-team-project/config"
	"github.com/overstimulation/wellness-dashboard-team-project/controllers"
	"github.com/overstimulation/wellness-dashboard-team-project/internal/cache"
	"github.com/overstimulation/wellness-dashboard-team-project/middlewares"
	"github.com/overstimulation/wellness-dashboard-team-project/websocket"
)

// Controllers bundles everything the router dispatches to.
type Controllers struct {
	Auth    *controllers.AuthController
	History *controllers.HistoryController
	Profile *controllers.ProfileController
	Metrics *controllers.MetricsController
	Weather *controllers.WeatherController
	Seed    *controllers.SeedController
	Hub     *websocket.StreakHub
	Cache   *cache.Client
}

// SetupRouter builds the gin engine with CORS, rate limits and all routes.
func SetupRouter(cfg *config.Config, ctrl Controllers) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes for authentication and demo seeding
	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login",
		middlewares.RateLimit(ctrl.Cache, "login", 10, time.Minute),
		ctrl.Auth.Login)
	router.POST("/api/seed",
		middlewares.RateLimit(ctrl.Cache, "seed", 2, time.Minute),
		ctrl.Seed.Seed)

	// Protected routes (JWT auth)
	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/history", ctrl.History.List)
		api.POST("/history", ctrl.History.Submit)
		api.DELETE("/history", ctrl.History.Delete)

		api.GET("/profile", ctrl.Profile.Get)
		api.POST("/profile", ctrl.Profile.Save)
		api.GET("/user/metrics", ctrl.Metrics.Get)

		api.GET("/weather", ctrl.Weather.Get)

		api.DELETE("/account", ctrl.Auth.DeleteAccount)
	}

	// WebSocket endpoint authenticates its own token (query param support
	// for browser clients), so it sits outside the middleware group.
	router.GET("/ws", websocket.StreakSocketHandler(ctrl.Hub))

	return router
}
