package models

import (
	"testing"
)

func samplePlaces() []*Place {
	return []*Place{
		{Name: "Taj Mahal", City: "Agra", Description: "Marble mausoleum on the Yamuna"},
		{Name: "Hawa Mahal", City: "Jaipur", Description: "Palace of winds"},
		{Name: "Marine Drive", City: "Mumbai", Description: "Seafront promenade"},
		{Name: "Dashashwamedh Ghat", City: "Varanasi", Description: "Main ghat on the Ganges"},
	}
}

func TestFilterPlacesMatchesNameCityDescription(t *testing.T) {
	places := samplePlaces()

	cases := []struct {
		query string
		want  []string
	}{
		{"taj", []string{"Taj Mahal"}},
		{"JAIPUR", []string{"Hawa Mahal"}},
		{"ghat", []string{"Dashashwamedh Ghat"}},
		{"mahal", []string{"Taj Mahal", "Hawa Mahal"}},
		{"  mumbai  ", []string{"Marine Drive"}},
		{"kanyakumari", nil},
	}

	for _, tc := range cases {
		got := FilterPlaces(places, tc.query)
		if len(got) != len(tc.want) {
			t.Errorf("FilterPlaces(%q) returned %d places, want %d", tc.query, len(got), len(tc.want))
			continue
		}
		for i, p := range got {
			if p.Name != tc.want[i] {
				t.Errorf("FilterPlaces(%q)[%d] = %q, want %q", tc.query, i, p.Name, tc.want[i])
			}
		}
	}
}

// Empty queries match everything and order must be preserved.
func TestFilterPlacesEmptyQueryPreservesOrder(t *testing.T) {
	places := samplePlaces()

	got := FilterPlaces(places, "")
	if len(got) != len(places) {
		t.Fatalf("empty query returned %d places, want %d", len(got), len(places))
	}
	for i := range places {
		if got[i] != places[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Name, places[i].Name)
		}
	}
}

func TestCoordinatesScanFormats(t *testing.T) {
	cases := []struct {
		name     string
		input    interface{}
		wantLat  float64
		wantLng  float64
	}{
		{"wkt point", "POINT(77.2090 28.6139)", 28.6139, 77.2090},
		{"ewkt point", "SRID=4326;POINT(77.2090 28.6139)", 28.6139, 77.2090},
		{"lat lng pair", "28.6139, 77.2090", 28.6139, 77.2090},
		{"nil value", nil, 0, 0},
	}

	for _, tc := range cases {
		var c Coordinates
		if err := c.Scan(tc.input); err != nil {
			t.Errorf("%s: Scan failed: %v", tc.name, err)
			continue
		}
		if c.Latitude != tc.wantLat || c.Longitude != tc.wantLng {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tc.name, c.Latitude, c.Longitude, tc.wantLat, tc.wantLng)
		}
	}
}
