package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/models"
)

// recordingPlacesRepo counts writes so tests can assert nothing was
// persisted when validation fails.
type recordingPlacesRepo struct {
	createCalls int
	updateCalls int
}

func (r *recordingPlacesRepo) CreatePlace(ctx context.Context, place *models.Place, accessToken string) (*models.Place, error) {
	r.createCalls++
	return place, nil
}

func (r *recordingPlacesRepo) GetPlaceByID(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	return nil, nil
}

func (r *recordingPlacesRepo) ListPlaces(ctx context.Context, offset, limit int) ([]*models.Place, int, error) {
	return nil, 0, nil
}

func (r *recordingPlacesRepo) ListFeaturedPlaces(ctx context.Context, limit int) ([]*models.Place, error) {
	return nil, nil
}

func (r *recordingPlacesRepo) SearchPlaces(ctx context.Context, query string, offset, limit int) ([]*models.Place, int, error) {
	return nil, 0, nil
}

func (r *recordingPlacesRepo) QueryPlaces(ctx context.Context, filters map[string]string, offset, limit int) ([]*models.Place, int, error) {
	return nil, 0, nil
}

func (r *recordingPlacesRepo) UpdatePlace(ctx context.Context, updates map[string]interface{}, id uuid.UUID, accessToken string) (*models.Place, error) {
	r.updateCalls++
	return nil, nil
}

func (r *recordingPlacesRepo) DeletePlace(ctx context.Context, id uuid.UUID, accessToken string) error {
	return nil
}

func validPlace() *models.Place {
	return &models.Place{
		Name:        "Mehrangarh Fort",
		Description: "Hilltop fort overlooking the blue city",
		Category:    "heritage",
		City:        "Jodhpur",
		State:       "Rajasthan",
		PriceRange:  "BUDGET",
		EntryFee:    100,
	}
}

// Invalid submissions must be rejected before any write reaches the repo.
func TestCreatePlaceRejectsInvalidBeforeWrite(t *testing.T) {
	repo := &recordingPlacesRepo{}
	svc := NewPlaceService(repo)

	invalid := []*models.Place{
		{},
		{Name: "Nameless", City: "Agra"},                 // missing description, category, state
		{Name: "X", Description: "d", Category: "fort"},  // missing city and state
	}

	for i, place := range invalid {
		if _, err := svc.CreatePlace(context.Background(), place, ""); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	if repo.createCalls != 0 {
		t.Errorf("repo received %d create calls for invalid input, want 0", repo.createCalls)
	}
}

func TestCreatePlaceDefaultsAndSlug(t *testing.T) {
	repo := &recordingPlacesRepo{}
	svc := NewPlaceService(repo)

	created, err := svc.CreatePlace(context.Background(), validPlace(), "")
	if err != nil {
		t.Fatalf("CreatePlace failed: %v", err)
	}

	if repo.createCalls != 1 {
		t.Fatalf("repo received %d create calls, want 1", repo.createCalls)
	}
	if created.Country != "India" {
		t.Errorf("country not defaulted, got %q", created.Country)
	}
	if created.Id == uuid.Nil {
		t.Error("id was not assigned")
	}
	if created.Slug == "" {
		t.Error("slug was not generated")
	}
	if created.Status != models.PlaceActive {
		t.Errorf("status = %q, want %q", created.Status, models.PlaceActive)
	}
}

func TestCreatePlaceRejectsBadPriceRange(t *testing.T) {
	repo := &recordingPlacesRepo{}
	svc := NewPlaceService(repo)

	place := validPlace()
	place.PriceRange = "LUXURY"

	if _, err := svc.CreatePlace(context.Background(), place, ""); err == nil {
		t.Error("expected price range error")
	}
	if repo.createCalls != 0 {
		t.Errorf("repo received %d create calls, want 0", repo.createCalls)
	}
}

func TestNormalizePriceRangeFreeZeroesFee(t *testing.T) {
	place := validPlace()
	place.PriceRange = "free"
	place.EntryFee = 500

	if err := NormalizePriceRange(place); err != nil {
		t.Fatalf("NormalizePriceRange failed: %v", err)
	}
	if place.PriceRange != "FREE" {
		t.Errorf("price range = %q, want FREE", place.PriceRange)
	}
	if place.EntryFee != 0 {
		t.Errorf("entry fee = %v, want 0 for FREE places", place.EntryFee)
	}
}

func TestUpdatePlaceStripsIDAndStampsTime(t *testing.T) {
	repo := &recordingPlacesRepo{}
	svc := NewPlaceService(repo)

	updates := map[string]interface{}{
		"id":          "should-be-removed",
		"description": "new text",
	}

	if _, err := svc.UpdatePlace(context.Background(), updates, uuid.New(), ""); err != nil {
		t.Fatalf("UpdatePlace failed: %v", err)
	}

	if _, exists := updates["id"]; exists {
		t.Error("id survived into the update payload")
	}
	if _, exists := updates["updated_at"]; !exists {
		t.Error("updated_at was not stamped")
	}
	if repo.updateCalls != 1 {
		t.Errorf("repo received %d update calls, want 1", repo.updateCalls)
	}
}
