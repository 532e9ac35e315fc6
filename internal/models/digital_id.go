package models

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// DigitalID is a traveler-submitted identity document record. The display
// identifier is issued server-side; CredentialToken carries the signed
// proof of issuance.
type DigitalID struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           uuid.UUID `db:"user_id" json:"user_id"`
	DisplayID        string    `db:"display_id" json:"display_id"`
	FullName         string    `db:"fullname" json:"fullname" validate:"required"`
	IDType           string    `db:"id_type" json:"id_type" validate:"required,oneof=aadhaar passport voter_id driving_license"`
	IDNumber         string    `db:"id_number" json:"id_number" validate:"required"`
	Address          string    `db:"address" json:"address" validate:"required"`
	EmergencyContact string    `db:"emergency_contact" json:"emergency_contact" validate:"required"`
	PhotoURL         string    `db:"photo_url" json:"photo_url,omitempty"`
	CredentialToken  string    `db:"credential_token" json:"credential_token,omitempty"`
	IssuedAt         time.Time `db:"issued_at" json:"issued_at"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

const (
	displayIDPrefix    = "IND"
	displayIDSuffixLen = 6
	displayIDCharset   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Exactly 8 date digits and 6 uppercase base36 characters.
var displayIDPattern = regexp.MustCompile(`^IND-\d{8}-[0-9A-Z]{6}$`)

// GenerateDisplayID issues an identifier of the form IND-YYYYMMDD-XXXXXX,
// dated with the local calendar date at issue time.
func GenerateDisplayID(now time.Time) (string, error) {
	buf := make([]byte, displayIDSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate id suffix: %v", err)
	}
	for i, b := range buf {
		buf[i] = displayIDCharset[int(b)%len(displayIDCharset)]
	}
	return fmt.Sprintf("%s-%s-%s", displayIDPrefix, now.Format("20060102"), string(buf)), nil
}

// IsValidDisplayID reports whether s has the exact issued form. Lowercase
// suffixes are rejected.
func IsValidDisplayID(s string) bool {
	return displayIDPattern.MatchString(s)
}

// ExtractIssueDate returns the calendar date embedded in a display id, in
// the local time zone so the date never shifts across midnight boundaries.
func ExtractIssueDate(s string) (time.Time, error) {
	if !IsValidDisplayID(s) {
		return time.Time{}, fmt.Errorf("invalid digital id: %q", s)
	}
	datePart := s[len(displayIDPrefix)+1 : len(displayIDPrefix)+9]
	t, err := time.ParseInLocation("20060102", datePart, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date in digital id %q: %v", s, err)
	}
	return t, nil
}
