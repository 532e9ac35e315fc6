package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/connect"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/models"
)

type PlaceService struct {
	placesRepo models.PlacesRepo
}

func NewPlaceService(placesRepo models.PlacesRepo) *PlaceService {
	return &PlaceService{
		placesRepo: placesRepo,
	}
}

// NormalizePriceRange uppercases and checks the price range enum.
func NormalizePriceRange(p *models.Place) error {
	if p == nil {
		return fmt.Errorf("place is nil")
	}

	pr := strings.ToUpper(strings.TrimSpace(p.PriceRange))
	p.PriceRange = pr

	switch pr {
	case "", "FREE":
		p.EntryFee = 0
	case "BUDGET", "MODERATE", "PREMIUM":
		if p.EntryFee < 0 {
			return fmt.Errorf("entry_fee must be >= 0 for %s", pr)
		}
	default:
		return fmt.Errorf("unsupported price_range: %s (expected FREE, BUDGET, MODERATE, PREMIUM)", p.PriceRange)
	}

	return nil
}

func (ps *PlaceService) CreatePlace(ctx context.Context, place *models.Place, accessToken string) (*models.Place, error) {
	// Required-field check happens before any write is issued
	if err := models.Validate.Struct(place); err != nil {
		return nil, fmt.Errorf("invalid place data provided: %v", err)
	}

	if err := NormalizePriceRange(place); err != nil {
		return nil, err
	}

	place.Slug = helpers.GenerateSlug(place.Name, place.City)
	now := time.Now()
	if place.Id == uuid.Nil {
		place.Id = uuid.New()
	}
	if place.Country == "" {
		place.Country = "India"
	}

	// Upload images first if any
	if len(place.Images) > 0 {
		uploadChan := make(chan []string, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, uploadErr := helpers.UploadImages(ctx, connect.Cld, place.Images, helpers.PlacesFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- urls
		}()

		select {
		case urls := <-uploadChan:
			place.Images = urls
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload images: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	place.CreatedAt = now
	place.UpdatedAt = now
	place.Status = models.PlaceActive

	return ps.placesRepo.CreatePlace(ctx, place, accessToken)
}

func (ps *PlaceService) ListPlaces(ctx context.Context, offset, limit int) ([]*models.Place, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return ps.placesRepo.ListPlaces(ctx, offset, limit)
}

func (ps *PlaceService) ListFeaturedPlaces(ctx context.Context, limit int) ([]*models.Place, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit")
	}

	return ps.placesRepo.ListFeaturedPlaces(ctx, limit)
}

func (ps *PlaceService) GetPlaceByID(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid place ID")
	}

	return ps.placesRepo.GetPlaceByID(ctx, id)
}

func (ps *PlaceService) SearchPlaces(ctx context.Context, query string, offset, limit int) ([]*models.Place, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	if strings.TrimSpace(query) == "" {
		return nil, 0, fmt.Errorf("search query cannot be empty")
	}

	return ps.placesRepo.SearchPlaces(ctx, query, offset, limit)
}

func (ps *PlaceService) QueryPlaces(ctx context.Context, filters map[string]string, offset, limit int) ([]*models.Place, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	if len(filters) == 0 {
		return nil, 0, fmt.Errorf("query parameters cannot be empty")
	}

	return ps.placesRepo.QueryPlaces(ctx, filters, offset, limit)
}

func (ps *PlaceService) UpdatePlace(ctx context.Context, updates map[string]interface{}, id uuid.UUID, accessToken string) (*models.Place, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid place ID")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	delete(updates, "id")
	updates["updated_at"] = time.Now()

	return ps.placesRepo.UpdatePlace(ctx, updates, id, accessToken)
}

func (ps *PlaceService) DeletePlace(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid place ID")
	}

	return ps.placesRepo.DeletePlace(ctx, id, accessToken)
}
