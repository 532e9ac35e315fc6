package models

import (
	"testing"
)

func TestFilterByCityCaseInsensitiveSubstring(t *testing.T) {
	rows := []Attraction{
		{Name: "Dhuandhar Falls", City: "Jabalpur"},
		{Name: "Hawa Mahal", City: "Jaipur"},
		{Name: "Marble Rocks", City: "Jabalpur"},
		{Name: "Charminar", City: "Hyderabad"},
	}

	got := filterByCity(rows, "JABALPUR", func(a Attraction) string { return a.City })
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Name != "Dhuandhar Falls" || got[1].Name != "Marble Rocks" {
		t.Errorf("wrong rows or order: %v, %v", got[0].Name, got[1].Name)
	}

	// Substring matches keep the fallback useful for sloppy data
	if partial := filterByCity(rows, "jaip", func(a Attraction) string { return a.City }); len(partial) != 1 {
		t.Errorf("partial match returned %d rows, want 1", len(partial))
	}

	if none := filterByCity(rows, "pune", func(a Attraction) string { return a.City }); len(none) != 0 {
		t.Errorf("expected no rows for unknown city, got %d", len(none))
	}
}
