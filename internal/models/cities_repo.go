package models

import (
	"context"
	"encoding/json"
	"fmt"
)

type CityRepo interface {
	GetCityByName(ctx context.Context, name string) (*City, error)
	ListCities(ctx context.Context) ([]City, error)
	GetAttractions(ctx context.Context, city string) ([]Attraction, error)
	GetLocalSpecialties(ctx context.Context, city string) ([]LocalSpecialty, error)
	GetTransportOptions(ctx context.Context, city string) ([]TransportOption, error)
	GetCityEvents(ctx context.Context, city string) ([]CityEvent, error)
}

// broadFallbackLimit caps the unfiltered fallback query so the in-memory
// filter never pulls a whole table. The fallback chain itself reproduces
// the source pages: exact match, then ilike, then broad fetch filtered
// client-side. It degrades with table growth.
const broadFallbackLimit = 500

// loadCityRows runs the fallback chain against one table and decodes the
// first non-empty result into dst.
func (su *SupabaseRepo) loadCityRows(ctx context.Context, table, city string, dst interface{}, matches func([]byte, string) ([]byte, error)) error {
	// 1. exact match
	data, _, err := su.supabaseClient.
		From(table).
		Select("*", "", false).
		Eq("city", city).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to query %s: %v", table, err)
	}
	if !emptyRows(data) {
		return json.Unmarshal(data, dst)
	}

	// 2. retry case-insensitively
	data, _, err = su.supabaseClient.
		From(table).
		Select("*", "", false).
		Ilike("city", city).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to query %s (ilike): %v", table, err)
	}
	if !emptyRows(data) {
		return json.Unmarshal(data, dst)
	}

	// 3. broad fetch, filter in memory
	data, _, err = su.supabaseClient.
		From(table).
		Select("*", "", false).
		Limit(broadFallbackLimit, "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to query %s (broad): %v", table, err)
	}

	filtered, err := matches(data, city)
	if err != nil {
		return err
	}
	return json.Unmarshal(filtered, dst)
}

func emptyRows(data []byte) bool {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return true
	}
	return len(rows) == 0
}

// narrowRows decodes rows of T, filters them by city substring and
// re-encodes, so loadCityRows can stay type-agnostic.
func narrowRows[T any](cityOf func(T) string) func([]byte, string) ([]byte, error) {
	return func(data []byte, city string) ([]byte, error) {
		var rows []T
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fallback rows: %v", err)
		}
		return json.Marshal(filterByCity(rows, city, cityOf))
	}
}

func (su *SupabaseRepo) GetCityByName(ctx context.Context, name string) (*City, error) {
	data, _, err := su.supabaseClient.
		From(CitiesTable).
		Select("*", "", false).
		Ilike("name", name).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %v", err)
	}

	var cities []City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal city rows: %v", err)
	}
	if len(cities) == 0 {
		return nil, nil
	}
	return &cities[0], nil
}

func (su *SupabaseRepo) ListCities(ctx context.Context) ([]City, error) {
	data, _, err := su.supabaseClient.
		From(CitiesTable).
		Select("*", "", false).
		Order("name", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %v", err)
	}

	var cities []City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal city rows: %v", err)
	}
	return cities, nil
}

func (su *SupabaseRepo) GetAttractions(ctx context.Context, city string) ([]Attraction, error) {
	var rows []Attraction
	err := su.loadCityRows(ctx, PlacesTable, city, &rows,
		narrowRows(func(a Attraction) string { return a.City }))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (su *SupabaseRepo) GetLocalSpecialties(ctx context.Context, city string) ([]LocalSpecialty, error) {
	var rows []LocalSpecialty
	err := su.loadCityRows(ctx, LocalSpecialtiesTable, city, &rows,
		narrowRows(func(s LocalSpecialty) string { return s.City }))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (su *SupabaseRepo) GetTransportOptions(ctx context.Context, city string) ([]TransportOption, error) {
	var rows []TransportOption
	err := su.loadCityRows(ctx, TransportTable, city, &rows,
		narrowRows(func(t TransportOption) string { return t.City }))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (su *SupabaseRepo) GetCityEvents(ctx context.Context, city string) ([]CityEvent, error) {
	var rows []CityEvent
	err := su.loadCityRows(ctx, EventsTable, city, &rows,
		narrowRows(func(e CityEvent) string { return e.City }))
	if err != nil {
		return nil, err
	}
	return rows, nil
}
