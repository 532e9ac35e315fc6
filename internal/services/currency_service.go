package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// CurrencyService converts trip-budget amounts between INR and a fixed set
// of visitor currencies. Rates are static reference values, not a live feed.
type CurrencyService struct {
	// INR per one unit of the currency
	ratesToINR map[string]float64
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{
		ratesToINR: map[string]float64{
			"INR": 1.0,
			"USD": 83.20,
			"EUR": 90.45,
			"GBP": 105.60,
			"AUD": 54.80,
			"CAD": 61.30,
			"SGD": 61.90,
			"AED": 22.65,
			"JPY": 0.56,
		},
	}
}

// SupportedCurrencies lists the currency codes Convert accepts, sorted.
func (cs *CurrencyService) SupportedCurrencies() []string {
	codes := make([]string, 0, len(cs.ratesToINR))
	for code := range cs.ratesToINR {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Convert converts amount from one currency to another via INR, rounded to
// two decimals.
func (cs *CurrencyService) Convert(amount float64, from, to string) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("amount must be >= 0")
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	fromRate, ok := cs.ratesToINR[from]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", from)
	}
	toRate, ok := cs.ratesToINR[to]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", to)
	}

	converted := amount * fromRate / toRate
	return math.Round(converted*100) / 100, nil
}
