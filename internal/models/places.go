package models

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PlaceStatus string

const (
	PlaceActive   PlaceStatus = "active"
	PlaceInactive PlaceStatus = "inactive"
)

// Coordinates maps to PostGIS geography(Point,4326)
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Scan allows Coordinates to be read from Postgres
func (c *Coordinates) Scan(src interface{}) error {
	var dataStr string

	switch v := src.(type) {
	case []byte:
		dataStr = string(v)
	case string:
		dataStr = v
	case nil:
		// Handle nil coordinates gracefully - set to zero
		c.Latitude = 0
		c.Longitude = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Coordinates", src)
	}

	// First try WKT formats
	var lon, lat float64
	var err error

	_, err = fmt.Sscanf(dataStr, "POINT(%f %f)", &lon, &lat)
	if err == nil {
		c.Latitude = lat
		c.Longitude = lon
		return nil
	}

	_, err = fmt.Sscanf(dataStr, "SRID=4326;POINT(%f %f)", &lon, &lat)
	if err == nil {
		c.Latitude = lat
		c.Longitude = lon
		return nil
	}

	// Check if it's a hex-encoded EWKB string
	if len(dataStr) >= 32 && isHexString(dataStr) {
		ewkbBytes, err := hex.DecodeString(dataStr)
		if err != nil {
			return fmt.Errorf("failed to decode EWKB hex: %v", err)
		}
		return c.parseEWKB(ewkbBytes)
	}

	// Fall back to plain "lat,lng" pairs
	if parts := strings.Split(dataStr, ","); len(parts) == 2 {
		if lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
			if lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				c.Latitude = lat
				c.Longitude = lng
				return nil
			}
		}
	}

	return fmt.Errorf("failed to parse coordinates from: %q", dataStr)
}

// isHexString checks if a string contains only hexadecimal characters
func isHexString(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

// parseEWKB parses Extended Well-Known Binary format for PostGIS Point
func (c *Coordinates) parseEWKB(data []byte) error {
	if len(data) < 21 {
		return fmt.Errorf("EWKB data too short: %d bytes", len(data))
	}

	// EWKB format for Point with SRID:
	// Byte 0: Endianness (1 = little endian)
	// Bytes 1-4: Type with SRID flag (0x20000001 = Point with SRID)
	// Bytes 5-8: SRID (4326)
	// Bytes 9-16: X coordinate (longitude)
	// Bytes 17-24: Y coordinate (latitude)

	endian := data[0]
	var order binary.ByteOrder
	if endian == 1 {
		order = binary.LittleEndian
	} else {
		order = binary.BigEndian
	}

	typ := order.Uint32(data[1:5])
	if typ&0x20000000 == 0 {
		return fmt.Errorf("EWKB type does not have SRID flag: %x", typ)
	}

	srid := order.Uint32(data[5:9])
	if srid != 4326 {
		return fmt.Errorf("unexpected SRID: %d (expected 4326)", srid)
	}

	c.Longitude = math.Float64frombits(order.Uint64(data[9:17]))
	c.Latitude = math.Float64frombits(order.Uint64(data[17:25]))

	return nil
}

// Value allows Coordinates to be written into Postgres
func (c Coordinates) Value() (driver.Value, error) {
	return fmt.Sprintf("SRID=4326;POINT(%f %f)", c.Longitude, c.Latitude), nil
}

type TimeRange struct {
	Start string `json:"start"` // HH:MM (24h)
	End   string `json:"end"`   // HH:MM (24h)
}

// OpeningHours holds recurring visiting hours per weekday ("Mon".."Sun").
type OpeningHours struct {
	WeeklyHours map[string][]TimeRange `json:"weekly_hours,omitempty"` // {"Mon":[{"start":"06:00","end":"18:00"}]}
	ClosedDates []string               `json:"closed_dates,omitempty"` // e.g., ["2025-10-21"]
	Timezone    string                 `json:"timezone,omitempty"`     // e.g., "Asia/Kolkata"
}

// IsClosedOn reports whether a given date is listed as closed.
func (o OpeningHours) IsClosedOn(d time.Time) bool {
	ds := d.Format("2006-01-02")
	for _, s := range o.ClosedDates {
		if s == ds {
			return true
		}
	}
	return false
}

type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type Place struct {
	Id uuid.UUID `db:"id" json:"id,omitempty"`

	// CORE INFO
	Name        string   `db:"name" json:"name,omitempty" validate:"required"`
	Description string   `db:"description" json:"description,omitempty" validate:"required"`
	Images      []string `db:"images" json:"images,omitempty"`
	Category    string   `db:"category" json:"category,omitempty" validate:"required"`
	Slug        string   `db:"slug" json:"slug,omitempty"`
	Tags        []string `db:"tags" json:"tags,omitempty"`

	// LOCATION
	City        string      `db:"city" json:"city,omitempty" validate:"required"`
	State       string      `db:"state" json:"state,omitempty" validate:"required"`
	Country     string      `db:"country" json:"country,omitempty"`
	Coordinates Coordinates `db:"coordinates" json:"coordinates"`

	// VISITOR INFO
	Rating       float64      `db:"rating" json:"rating,omitempty"`
	PriceRange   string       `db:"price_range" json:"price_range,omitempty" validate:"omitempty,oneof=FREE BUDGET MODERATE PREMIUM"`
	EntryFee     float64      `db:"entry_fee" json:"entry_fee,omitempty"`
	OpeningHours OpeningHours `db:"opening_hours" json:"opening_hours,omitempty"`
	Contact      ContactInfo  `db:"contact" json:"contact,omitempty"`

	// STATUS & ADMIN
	Status     PlaceStatus `db:"status" json:"status,omitempty"`
	IsFeatured bool        `db:"is_featured" json:"is_featured,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// FilterPlaces returns the places whose name, city or description contains
// the query, case-insensitively, preserving the input order. An empty query
// matches everything.
func FilterPlaces(places []*Place, query string) []*Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return places
	}

	out := make([]*Place, 0, len(places))
	for _, p := range places {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.City), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
