package helpers

import (
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"Taj Mahal", "Agra"}, "taj-mahal-agra"},
		{[]string{"Humayun's Tomb", "Delhi"}, "humayun-s-tomb-delhi"},
		{[]string{"  Marine   Drive  ", "Mumbai"}, "marine-drive-mumbai"},
		{[]string{"Ghat #5"}, "ghat-5"},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.parts...); got != tc.want {
			t.Errorf("GenerateSlug(%v) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{"Str0ng!pass", "Another1@good"}
	for _, p := range strong {
		if !IsPasswordStrong(p) {
			t.Errorf("IsPasswordStrong(%q) = false, want true", p)
		}
	}

	for _, p := range []string{
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoNumbers!!",
		"NoSpecials11",
		"Sh0rt!a",
	} {
		if IsPasswordStrong(p) {
			t.Errorf("IsPasswordStrong(%q) = true, want false", p)
		}
	}
}

func TestRemoveDuplicatesPreservesOrder(t *testing.T) {
	got := RemoveDuplicates([]string{"fort", "beach", "fort", "temple", "beach"})
	want := []string{"fort", "beach", "temple"}

	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}
