package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/overstimulation/wellness-dashboard-team-project/services"
)

// WeatherController proxies OpenWeather lookups for the dashboard header.
type WeatherController struct {
	weather *services.WeatherService
}

func NewWeatherController(weather *services.WeatherService) *WeatherController {
	return &WeatherController{weather: weather}
}

// Get returns current conditions for ?city=.
func (w *WeatherController) Get(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query param required"})
		return
	}

	report, err := w.weather.Current(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, services.ErrWeatherNotConfigured) {
			log.Printf("OPENWEATHER_API_KEY not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather service not configured"})
			return
		}
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(upstream.StatusCode, gin.H{"error": "Failed to fetch weather data", "details": upstream.Message})
			return
		}
		log.Printf("weather lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, report)
}
