package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yatra-labs/yatra-server/internal/cache"
	"github.com/yatra-labs/yatra-server/internal/models"
)

const cityPageTTL = 10 * time.Minute

type CityService struct {
	cityRepo models.CityRepo
	cache    cache.Cache
	logger   *slog.Logger
}

func NewCityService(cityRepo models.CityRepo, c cache.Cache, logger *slog.Logger) *CityService {
	return &CityService{
		cityRepo: cityRepo,
		cache:    c,
		logger:   logger,
	}
}

func (cs *CityService) ListCities(ctx context.Context) ([]models.City, error) {
	return cs.cityRepo.ListCities(ctx)
}

// GetCityPage loads everything a destination city page shows. The four
// section queries are sequential and independent, matching the source
// pages; the assembled payload is cached per city.
func (cs *CityService) GetCityPage(ctx context.Context, cityName string) (*models.CityPage, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return nil, fmt.Errorf("city name is required")
	}

	cacheKey := "citypage:" + strings.ToLower(cityName)
	if cs.cache != nil {
		if cached, err := cs.cache.Get(ctx, cacheKey); err == nil {
			var page models.CityPage
			if err := json.Unmarshal(cached, &page); err == nil {
				return &page, nil
			}
		}
	}

	city, err := cs.cityRepo.GetCityByName(ctx, cityName)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, fmt.Errorf("city not found: %s", cityName)
	}

	page := &models.CityPage{City: city}

	page.Attractions, err = cs.cityRepo.GetAttractions(ctx, city.Name)
	if err != nil {
		return nil, err
	}

	page.Specialties, err = cs.cityRepo.GetLocalSpecialties(ctx, city.Name)
	if err != nil {
		return nil, err
	}

	page.Transport, err = cs.cityRepo.GetTransportOptions(ctx, city.Name)
	if err != nil {
		return nil, err
	}

	page.Events, err = cs.cityRepo.GetCityEvents(ctx, city.Name)
	if err != nil {
		return nil, err
	}

	if cs.cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			if err := cs.cache.Set(ctx, cacheKey, payload, cityPageTTL); err != nil {
				cs.logger.Warn("failed to cache city page", "city", cityName, "error", err)
			}
		}
	}

	return page, nil
}
