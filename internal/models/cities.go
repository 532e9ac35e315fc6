package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// City is a row in the cities table; one exists per destination city page.
type City struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	State       string    `db:"state" json:"state"`
	Description string    `db:"description" json:"description"`
	BestSeason  string    `db:"best_season" json:"best_season"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Attraction struct {
	ID          uuid.UUID `db:"id" json:"id"`
	City        string    `db:"city" json:"city"`
	State       string    `db:"state" json:"state"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Rating      float64   `db:"rating" json:"rating"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type LocalSpecialty struct {
	ID          uuid.UUID `db:"id" json:"id"`
	City        string    `db:"city" json:"city"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"` // food, craft, textile
	WhereToFind string    `db:"where_to_find" json:"where_to_find"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type TransportOption struct {
	ID          uuid.UUID `db:"id" json:"id"`
	City        string    `db:"city" json:"city"`
	Mode        string    `db:"mode" json:"mode"` // air, rail, road, metro
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Frequency   string    `db:"frequency" json:"frequency"`
	FareRange   string    `db:"fare_range" json:"fare_range"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CityEvent struct {
	ID          uuid.UUID `db:"id" json:"id"`
	City        string    `db:"city" json:"city"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Venue       string    `db:"venue" json:"venue"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CityPage aggregates everything a destination city page shows.
type CityPage struct {
	City        *City             `json:"city,omitempty"`
	Attractions []Attraction      `json:"attractions"`
	Specialties []LocalSpecialty  `json:"specialties"`
	Transport   []TransportOption `json:"transport"`
	Events      []CityEvent       `json:"events"`
}

// filterByCity keeps the rows whose city name contains the query,
// case-insensitively. Used by the broad-query fallback in the city loader.
func filterByCity[T any](rows []T, city string, cityOf func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(city))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(cityOf(row)), q) {
			out = append(out, row)
		}
	}
	return out
}
