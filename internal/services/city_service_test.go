package services

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/yatra-labs/yatra-server/internal/cache"
	"github.com/yatra-labs/yatra-server/internal/models"
)

// memoryCache is a map-backed stand-in for the redis cache.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// countingCityRepo serves static rows and counts lookups.
type countingCityRepo struct {
	lookups int
}

func (r *countingCityRepo) GetCityByName(ctx context.Context, name string) (*models.City, error) {
	r.lookups++
	if name != "Jabalpur" {
		return nil, nil
	}
	return &models.City{Name: "Jabalpur", State: "Madhya Pradesh"}, nil
}

func (r *countingCityRepo) ListCities(ctx context.Context) ([]models.City, error) {
	return []models.City{{Name: "Jabalpur"}}, nil
}

func (r *countingCityRepo) GetAttractions(ctx context.Context, city string) ([]models.Attraction, error) {
	return []models.Attraction{{Name: "Dhuandhar Falls", City: city}}, nil
}

func (r *countingCityRepo) GetLocalSpecialties(ctx context.Context, city string) ([]models.LocalSpecialty, error) {
	return []models.LocalSpecialty{{Name: "Khoye ki Jalebi", City: city}}, nil
}

func (r *countingCityRepo) GetTransportOptions(ctx context.Context, city string) ([]models.TransportOption, error) {
	return []models.TransportOption{{Mode: "rail", City: city}}, nil
}

func (r *countingCityRepo) GetCityEvents(ctx context.Context, city string) ([]models.CityEvent, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGetCityPageAssemblesSections(t *testing.T) {
	repo := &countingCityRepo{}
	svc := NewCityService(repo, newMemoryCache(), testLogger())

	page, err := svc.GetCityPage(context.Background(), "Jabalpur")
	if err != nil {
		t.Fatalf("GetCityPage failed: %v", err)
	}

	if page.City == nil || page.City.Name != "Jabalpur" {
		t.Fatal("city row missing from page")
	}
	if len(page.Attractions) != 1 || page.Attractions[0].Name != "Dhuandhar Falls" {
		t.Error("attractions section missing")
	}
	if len(page.Specialties) != 1 {
		t.Error("specialties section missing")
	}
	if len(page.Transport) != 1 {
		t.Error("transport section missing")
	}
}

func TestGetCityPageServesSecondHitFromCache(t *testing.T) {
	repo := &countingCityRepo{}
	svc := NewCityService(repo, newMemoryCache(), testLogger())

	if _, err := svc.GetCityPage(context.Background(), "Jabalpur"); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	if _, err := svc.GetCityPage(context.Background(), "jabalpur"); err != nil {
		t.Fatalf("cached load failed: %v", err)
	}

	if repo.lookups != 1 {
		t.Errorf("repo hit %d times, want 1 (second load should come from cache)", repo.lookups)
	}
}

func TestGetCityPageUnknownCity(t *testing.T) {
	svc := NewCityService(&countingCityRepo{}, newMemoryCache(), testLogger())

	if _, err := svc.GetCityPage(context.Background(), "Atlantis"); err == nil {
		t.Error("unknown city should return an error")
	}
	if _, err := svc.GetCityPage(context.Background(), "   "); err == nil {
		t.Error("blank city name should return an error")
	}
}
