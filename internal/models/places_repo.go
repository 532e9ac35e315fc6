package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type PlacesRepo interface {
	CreatePlace(ctx context.Context, place *Place, accessToken string) (*Place, error)
	GetPlaceByID(ctx context.Context, id uuid.UUID) (*Place, error)
	ListPlaces(ctx context.Context, offset, limit int) ([]*Place, int, error)
	ListFeaturedPlaces(ctx context.Context, limit int) ([]*Place, error)
	SearchPlaces(ctx context.Context, query string, offset, limit int) ([]*Place, int, error)
	QueryPlaces(ctx context.Context, filters map[string]string, offset, limit int) ([]*Place, int, error)
	UpdatePlace(ctx context.Context, updates map[string]interface{}, id uuid.UUID, accessToken string) (*Place, error)
	DeletePlace(ctx context.Context, id uuid.UUID, accessToken string) error
}

// decodePlaceRows unmarshals postgrest rows into places, parsing the PostGIS
// coordinates string separately since it does not round-trip through JSON.
func decodePlaceRows(data []byte) ([]*Place, error) {
	var rawPlaces []map[string]interface{}
	if err := json.Unmarshal(data, &rawPlaces); err != nil {
		return nil, fmt.Errorf("failed to unmarshal places: %v", err)
	}

	places := make([]*Place, 0, len(rawPlaces))
	for _, raw := range rawPlaces {
		place := &Place{}

		var coordStr string
		if coords, exists := raw["coordinates"]; exists {
			if str, ok := coords.(string); ok {
				coordStr = str
			}
			delete(raw, "coordinates")
		}

		rowData, _ := json.Marshal(raw)
		if err := json.Unmarshal(rowData, place); err != nil {
			return nil, fmt.Errorf("failed to convert place data: %v", err)
		}

		if coordStr != "" {
			if err := place.Coordinates.Scan([]byte(coordStr)); err != nil {
				return nil, fmt.Errorf("failed to parse coordinates for place %v: %v", raw["id"], err)
			}
		}

		places = append(places, place)
	}

	return places, nil
}

func (su *SupabaseRepo) CreatePlace(ctx context.Context, place *Place, accessToken string) (*Place, error) {
	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	// Convert coordinates to PostGIS format manually for the REST API
	placeData := map[string]interface{}{
		"id":            place.Id,
		"name":          place.Name,
		"description":   place.Description,
		"images":        place.Images,
		"category":      place.Category,
		"slug":          place.Slug,
		"tags":          place.Tags,
		"city":          place.City,
		"state":         place.State,
		"country":       place.Country,
		"coordinates":   fmt.Sprintf("SRID=4326;POINT(%f %f)", place.Coordinates.Longitude, place.Coordinates.Latitude),
		"rating":        place.Rating,
		"price_range":   place.PriceRange,
		"entry_fee":     place.EntryFee,
		"opening_hours": place.OpeningHours,
		"contact":       place.Contact,
		"status":        place.Status,
		"is_featured":   place.IsFeatured,
		"created_at":    place.CreatedAt,
		"updated_at":    place.UpdatedAt,
	}

	data, count, err := client.
		From(PlacesTable).
		Insert(placeData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create place: %v", err)
	}

	created, err := decodePlaceRows(data)
	if err != nil {
		return nil, err
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no place data returned after insert")
	}

	return created[0], nil
}

func (su *SupabaseRepo) GetPlaceByID(ctx context.Context, id uuid.UUID) (*Place, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	data, _, err := su.supabaseClient.
		From(PlacesTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get place by ID: %v", err)
	}

	places, err := decodePlaceRows(data)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, nil
	}

	return places[0], nil
}

func (su *SupabaseRepo) ListPlaces(ctx context.Context, offset, limit int) ([]*Place, int, error) {
	data, count, err := su.supabaseClient.
		From(PlacesTable).
		Select("*", "exact", false).
		Eq("status", string(PlaceActive)).
		Order("name", nil).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get places: %v", err)
	}

	if count == 0 {
		return []*Place{}, 0, nil
	}

	places, err := decodePlaceRows(data)
	if err != nil {
		return nil, 0, err
	}

	return places, int(count), nil
}

func (su *SupabaseRepo) ListFeaturedPlaces(ctx context.Context, limit int) ([]*Place, error) {
	data, _, err := su.supabaseClient.
		From(PlacesTable).
		Select("*", "", false).
		Eq("status", string(PlaceActive)).
		Eq("is_featured", "true").
		Order("rating", nil).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get featured places: %v", err)
	}

	return decodePlaceRows(data)
}

func (su *SupabaseRepo) SearchPlaces(ctx context.Context, query string, offset, limit int) ([]*Place, int, error) {
	pattern := "%" + query + "%"

	data, count, err := su.supabaseClient.
		From(PlacesTable).
		Select("*", "exact", false).
		Eq("status", string(PlaceActive)).
		Or(fmt.Sprintf("name.ilike.%s,city.ilike.%s,description.ilike.%s", pattern, pattern, pattern), "").
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search places: %v", err)
	}

	if count == 0 {
		return []*Place{}, 0, nil
	}

	places, err := decodePlaceRows(data)
	if err != nil {
		return nil, 0, err
	}

	return places, int(count), nil
}

func (su *SupabaseRepo) QueryPlaces(ctx context.Context, filters map[string]string, offset, limit int) ([]*Place, int, error) {
	builder := su.supabaseClient.
		From(PlacesTable).
		Select("*", "exact", false).
		Eq("status", string(PlaceActive))

	// city/state are matched case-insensitively the way the source pages do
	for column, value := range filters {
		switch column {
		case "city", "state":
			builder = builder.Ilike(column, value)
		default:
			builder = builder.Eq(column, value)
		}
	}

	data, count, err := builder.
		Order("name", nil).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query places: %v", err)
	}

	if count == 0 {
		return []*Place{}, 0, nil
	}

	places, err := decodePlaceRows(data)
	if err != nil {
		return nil, 0, err
	}

	return places, int(count), nil
}

func (su *SupabaseRepo) UpdatePlace(ctx context.Context, updates map[string]interface{}, id uuid.UUID, accessToken string) (*Place, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	// Coordinates must be written in PostGIS text form
	if coords, ok := updates["coordinates"]; ok {
		if c, ok := coords.(Coordinates); ok {
			val, err := c.Value()
			if err != nil {
				return nil, fmt.Errorf("failed to convert coordinates: %v", err)
			}
			updates["coordinates"] = val
		}
	}

	data, count, err := client.
		From(PlacesTable).
		Update(updates, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update place: %v", err)
	}

	if count == 0 {
		return nil, fmt.Errorf("no place found to update")
	}

	places, err := decodePlaceRows(data)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, fmt.Errorf("no place data returned after update")
	}

	return places[0], nil
}

func (su *SupabaseRepo) DeletePlace(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid UUID")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	_, count, err := client.
		From(PlacesTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete place: %v", err)
	}

	if count == 0 {
		return fmt.Errorf("no place found to delete")
	}

	return nil
}
