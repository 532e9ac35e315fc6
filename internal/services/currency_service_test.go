package services

import (
	"math"
	"testing"
)

func TestConvertToINR(t *testing.T) {
	cs := NewCurrencyService()

	got, err := cs.Convert(100, "USD", "INR")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != 8320.00 {
		t.Errorf("100 USD = %v INR, want 8320", got)
	}
}

func TestConvertCrossCurrencyGoesViaINR(t *testing.T) {
	cs := NewCurrencyService()

	got, err := cs.Convert(100, "USD", "EUR")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := math.Round(100*83.20/90.45*100) / 100
	if got != want {
		t.Errorf("100 USD = %v EUR, want %v", got, want)
	}
}

func TestConvertIdentityAndCaseInsensitive(t *testing.T) {
	cs := NewCurrencyService()

	got, err := cs.Convert(250.50, " inr ", "INR")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != 250.50 {
		t.Errorf("identity conversion changed the amount: %v", got)
	}
}

func TestConvertRejectsBadInput(t *testing.T) {
	cs := NewCurrencyService()

	if _, err := cs.Convert(-5, "USD", "INR"); err == nil {
		t.Error("negative amount should fail")
	}
	if _, err := cs.Convert(10, "XYZ", "INR"); err == nil {
		t.Error("unknown source currency should fail")
	}
	if _, err := cs.Convert(10, "INR", "XYZ"); err == nil {
		t.Error("unknown target currency should fail")
	}
}

func TestSupportedCurrenciesSortedAndComplete(t *testing.T) {
	cs := NewCurrencyService()

	codes := cs.SupportedCurrencies()
	if len(codes) == 0 {
		t.Fatal("no supported currencies")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes not sorted: %q before %q", codes[i-1], codes[i])
		}
	}

	found := false
	for _, c := range codes {
		if c == "INR" {
			found = true
		}
	}
	if !found {
		t.Error("INR missing from supported currencies")
	}
}
