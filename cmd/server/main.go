package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/overstimulation/wellness-dashboard-team-project/config"
	"github.com/overstimulation/wellness-dashboard-team-project/controllers"
	"github.com/overstimulation/wellness-dashboard-team-project/db"
	"github.com/overstimulation/wellness-dashboard-team-project/internal/cache"
	"github.com/overstimulation/wellness-dashboard-team-project/routes"
	"github.com/overstimulation/wellness-dashboard-team-project/services"
	"github.com/overstimulation/wellness-dashboard-team-project/store"
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
	"github.com/overstimulation/wellness-dashboard-team-project/websocket"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	// .env values become environment overrides picked up by LoadConfig.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on config file and environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTConfig(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)

	mongo, err := db.Connect(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongo.Disconnect(ctx)
	}()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	if err := mongo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancelIndexes()

	// Redis is optional: without it weather responses are uncached and rate
	// limits are off.
	var cacheClient *cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			cacheClient = nil
		}
	}

	users := store.NewUserStore(mongo)
	profiles := store.NewProfileStore(mongo)
	logs := store.NewDailyLogStore(mongo)
	weights := store.NewWeightEntryStore(mongo)

	hub := websocket.NewStreakHub()
	logService := services.NewDailyLogService(logs, users, hub)
	weatherService := services.NewWeatherService(
		cfg.Weather.APIKey,
		cacheClient,
		time.Duration(cfg.Weather.CacheTTLMinutes)*time.Minute,
	)

	router := routes.SetupRouter(cfg, routes.Controllers{
		Auth:    controllers.NewAuthController(users, profiles, logs, weights),
		History: controllers.NewHistoryController(logService),
		Profile: controllers.NewProfileController(users, profiles),
		Metrics: controllers.NewMetricsController(profiles),
		Weather: controllers.NewWeatherController(weatherService),
		Seed:    controllers.NewSeedController(users, profiles, logs, weights, cfg.Seed.Enabled),
		Hub:     hub,
		Cache:   cacheClient,
	})

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
