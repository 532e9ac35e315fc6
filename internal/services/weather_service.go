package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yatra-labs/yatra-server/internal/cache"
)

const (
	weatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	weatherTTL     = 15 * time.Minute
)

// Weather is the trimmed view the city pages render.
type Weather struct {
	City        string  `json:"city"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	WindKph     float64 `json:"wind_kph"`
	FetchedAt   string  `json:"fetched_at"`
}

type WeatherService struct {
	apiKey     string
	httpClient *http.Client
	cache      cache.Cache
	logger     *slog.Logger
}

func NewWeatherService(apiKey string, c cache.Cache, logger *slog.Logger) *WeatherService {
	return &WeatherService{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      c,
		logger:     logger,
	}
}

// openWeatherResponse mirrors only the fields we read from the provider.
type openWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with metric units
	} `json:"wind"`
}

func (ws *WeatherService) GetWeather(ctx context.Context, city string) (*Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}
	if ws.apiKey == "" {
		return nil, fmt.Errorf("weather provider is not configured")
	}

	cacheKey := "weather:" + strings.ToLower(city)
	if ws.cache != nil {
		if cached, err := ws.cache.Get(ctx, cacheKey); err == nil {
			var w Weather
			if err := json.Unmarshal(cached, &w); err == nil {
				return &w, nil
			}
		}
	}

	params := url.Values{}
	params.Set("q", city+",IN")
	params.Set("units", "metric")
	params.Set("appid", ws.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %v", err)
	}

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no weather data for city: %s", city)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %v", err)
	}

	w := &Weather{
		City:       raw.Name,
		TempC:      raw.Main.Temp,
		FeelsLikeC: raw.Main.FeelsLike,
		Humidity:   raw.Main.Humidity,
		WindKph:    raw.Wind.Speed * 3.6,
		FetchedAt:  time.Now().Format(time.RFC3339),
	}
	if len(raw.Weather) > 0 {
		w.Description = raw.Weather[0].Description
	}

	if ws.cache != nil {
		if payload, err := json.Marshal(w); err == nil {
			if err := ws.cache.Set(ctx, cacheKey, payload, weatherTTL); err != nil {
				ws.logger.Warn("failed to cache weather", "city", city, "error", err)
			}
		}
	}

	return w, nil
}
