package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/overstimulation/wellness-dashboard-team-project/internal/cache"
)

const openWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// ErrWeatherNotConfigured is returned when no API key is set.
var ErrWeatherNotConfigured = errors.New("weather service not configured")

// WeatherReport is the trimmed payload the dashboard renders.
type WeatherReport struct {
	Temp        float64 `json:"temp"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	City        string  `json:"city"`
}

// UpstreamError preserves the OpenWeather status code so the handler can
// pass it through.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather upstream returned %d: %s", e.StatusCode, e.Message)
}

// WeatherService proxies OpenWeather current conditions, with Redis-backed
// response caching keyed by city.
type WeatherService struct {
	apiKey   string
	client   *http.Client
	cache    *cache.Client
	cacheTTL time.Duration
}

func NewWeatherService(apiKey string, cacheClient *cache.Client, cacheTTL time.Duration) *WeatherService {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &WeatherService{
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cacheClient,
		cacheTTL: cacheTTL,
	}
}

// Current fetches the weather for a city, serving a cached report when one
// is fresh.
func (s *WeatherService) Current(ctx context.Context, city string) (*WeatherReport, error) {
	if s.apiKey == "" {
		return nil, ErrWeatherNotConfigured
	}

	key := "weather:" + strings.ToLower(strings.TrimSpace(city))
	if cached, ok := s.cache.Get(ctx, key); ok {
		var report WeatherReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	}

	reqURL := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", openWeatherEndpoint, url.QueryEscape(city), s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && resp.StatusCode == http.StatusOK {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	report := &WeatherReport{
		Temp:     payload.Main.Temp,
		Humidity: payload.Main.Humidity,
		City:     payload.Name,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}

	if encoded, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, key, string(encoded), s.cacheTTL)
	}

	return report, nil
}
