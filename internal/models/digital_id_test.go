package models

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateDisplayIDShape(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.Local)

	id, err := GenerateDisplayID(now)
	if err != nil {
		t.Fatalf("GenerateDisplayID failed: %v", err)
	}

	if !IsValidDisplayID(id) {
		t.Errorf("generated id %q does not validate", id)
	}
	if !strings.HasPrefix(id, "IND-20250314-") {
		t.Errorf("generated id %q does not carry the issue date", id)
	}
	if len(id) != len("IND-20250314-XXXXXX") {
		t.Errorf("generated id %q has wrong length", id)
	}
}

func TestGenerateDisplayIDSuffixVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateDisplayID(now)
		if err != nil {
			t.Fatalf("GenerateDisplayID failed: %v", err)
		}
		seen[id] = true
	}
	// 50 draws from a 36^6 space colliding down to a handful would mean
	// the suffix is not random at all.
	if len(seen) < 45 {
		t.Errorf("expected distinct suffixes, got %d unique ids out of 50", len(seen))
	}
}

func TestIsValidDisplayID(t *testing.T) {
	valid := []string{
		"IND-20250314-A1B2C3",
		"IND-19991231-000000",
		"IND-20250101-ZZZZZZ",
	}
	for _, id := range valid {
		if !IsValidDisplayID(id) {
			t.Errorf("IsValidDisplayID(%q) = false, want true", id)
		}
	}

	invalid := []string{
		"",
		"IND-20250314-a1b2c3",  // lowercase suffix
		"IND-20250314-A1B2C",   // short suffix
		"IND-20250314-A1B2C3D", // long suffix
		"IND-2025031-A1B2C3",   // short date
		"IDN-20250314-A1B2C3",  // wrong prefix
		"IND_20250314_A1B2C3",  // wrong separators
		" IND-20250314-A1B2C3", // leading space
		"IND-20250314-A1B2C3 ", // trailing space
	}
	for _, id := range invalid {
		if IsValidDisplayID(id) {
			t.Errorf("IsValidDisplayID(%q) = true, want false", id)
		}
	}
}

// An id generated today must always report today's date back.
func TestExtractIssueDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.June, 15, 23, 59, 59, 0, time.Local),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local),
	}

	for _, issued := range dates {
		id, err := GenerateDisplayID(issued)
		if err != nil {
			t.Fatalf("GenerateDisplayID failed: %v", err)
		}

		got, err := ExtractIssueDate(id)
		if err != nil {
			t.Fatalf("ExtractIssueDate(%q) failed: %v", id, err)
		}

		wantY, wantM, wantD := issued.Date()
		gotY, gotM, gotD := got.Date()
		if wantY != gotY || wantM != gotM || wantD != gotD {
			t.Errorf("round trip for %q: got %04d-%02d-%02d, want %04d-%02d-%02d",
				id, gotY, gotM, gotD, wantY, wantM, wantD)
		}
	}
}

func TestExtractIssueDateRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "IND-20250314-a1b2c3", "IND-20251350-A1B2C3"} {
		if _, err := ExtractIssueDate(id); err == nil {
			t.Errorf("ExtractIssueDate(%q) succeeded, want error", id)
		}
	}
}
