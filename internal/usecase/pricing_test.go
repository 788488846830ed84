package usecase

import (
	"testing"
)

func TestListingPrice(t *testing.T) {
	calc := NewPriceCalculator(DefaultPricingConfig())

	testCases := []struct {
		name  string
		cost  string
		grams int
		want  string
	}{
		{
			name:  "cost plus shipping plus margin",
			cost:  "100.0",
			grams: 500,
			want:  "1040.00", // 100 + 0.5*1800 + 0 + 40
		},
		{
			name:  "zero weight skips shipping",
			cost:  "100.0",
			grams: 0,
			want:  "140.00",
		},
		{
			name:  "heavy item",
			cost:  "250.50",
			grams: 2000,
			want:  "3950.70", // 250.50 + 3600 + 100.20
		},
		{
			name:  "empty cost passes through unchanged",
			cost:  "",
			grams: 500,
			want:  "",
		},
		{
			name:  "malformed cost coerces to zero",
			cost:  "not-a-number",
			grams: 1000,
			want:  "1800.00", // pure shipping
		},
		{
			name:  "zero cost still priced for shipping",
			cost:  "0",
			grams: 250,
			want:  "450.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.ListingPrice(tc.cost, tc.grams)
			if got != tc.want {
				t.Errorf("ListingPrice(%q, %d) = %q, want %q", tc.cost, tc.grams, got, tc.want)
			}
		})
	}
}

func TestListingPriceCustomConfig(t *testing.T) {
	calc := NewPriceCalculator(PricingConfig{
		ProfitMarginPercent: 20,
		Customs:             50,
		ShippingPricePerKG:  1000,
	})

	// 200 + 1.5*1000 + 50 + 200*0.20 = 1790
	got := calc.ListingPrice("200", 1500)
	if got != "1790.00" {
		t.Errorf("ListingPrice = %q, want 1790.00", got)
	}
}

func TestListingPriceRounding(t *testing.T) {
	calc := NewPriceCalculator(DefaultPricingConfig())

	// 10.555 + 0 + 0 + 4.222 = 14.777 -> 14.78
	got := calc.ListingPrice("10.555", 0)
	if got != "14.78" {
		t.Errorf("ListingPrice = %q, want 14.78", got)
	}
}
