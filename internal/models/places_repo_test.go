package models

import (
	"testing"
)

// Partial updates must convert coordinate structs into their PostGIS wire
// form while leaving every other field untouched.
func TestPartialUpdateDataProcessing(t *testing.T) {
	updateData := map[string]interface{}{
		"description": "Sunrise views over the ghats",
		"entry_fee":   200,
		"coordinates": Coordinates{
			Latitude:  25.3176,
			Longitude: 82.9739,
		},
	}

	// Mirror the processing logic in UpdatePlace
	processedData := make(map[string]interface{})
	for key, value := range updateData {
		if key == "coordinates" {
			if coords, ok := value.(Coordinates); ok {
				coordsValue, err := coords.Value()
				if err != nil {
					t.Fatalf("Failed to convert coordinates: %v", err)
				}
				processedData[key] = coordsValue
			}
		} else {
			processedData[key] = value
		}
	}

	if processedData["coordinates"] == nil {
		t.Error("Coordinates were not processed")
	}

	if processedData["description"] != "Sunrise views over the ghats" {
		t.Error("Description was not preserved")
	}

	if processedData["entry_fee"] != 200 {
		t.Error("Entry fee was not preserved")
	}
}
