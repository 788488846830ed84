package usecase

import (
	"fmt"
	"strconv"
)

// PricingConfig holds the constants that turn a supplier cost into a
// customer-facing listing price. All three are configuration, not code.
type PricingConfig struct {
	ProfitMarginPercent float64
	Customs             float64
	ShippingPricePerKG  float64
}

// Default pricing constants, overridable via configuration.
const (
	DefaultProfitMarginPercent = 40.0
	DefaultCustoms             = 0.0
	DefaultShippingPricePerKG  = 1800.0
)

// DefaultPricingConfig returns the default pricing constants.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		ProfitMarginPercent: DefaultProfitMarginPercent,
		Customs:             DefaultCustoms,
		ShippingPricePerKG:  DefaultShippingPricePerKG,
	}
}

// PriceCalculator computes listing prices from raw supplier cost and
// shipping weight. It is a pure transformation with no error conditions:
// malformed numeric input coerces to zero.
type PriceCalculator struct {
	config PricingConfig
}

// NewPriceCalculator creates a calculator with the given constants.
func NewPriceCalculator(config PricingConfig) *PriceCalculator {
	return &PriceCalculator{config: config}
}

// ListingPrice computes the customer-facing price:
// cost + (grams/1000)*shipping_per_kg + customs + cost*margin%, formatted
// to two decimals. An absent cost passes through unchanged rather than
// being treated as zero.
func (c *PriceCalculator) ListingPrice(cost string, grams int) string {
	if cost == "" {
		return cost
	}

	price := coerceFloat(cost)
	weightKG := float64(grams) / 1000.0

	shipping := weightKG * c.config.ShippingPricePerKG
	margin := price * (c.config.ProfitMarginPercent / 100.0)

	listing := price + shipping + c.config.Customs + margin

	return fmt.Sprintf("%.2f", listing)
}

// Summary describes the active pricing constants for logging and reports.
func (c *PriceCalculator) Summary() string {
	return fmt.Sprintf("margin=%.0f%% customs=%.2f shipping_per_kg=%.2f",
		c.config.ProfitMarginPercent, c.config.Customs, c.config.ShippingPricePerKG)
}

// coerceFloat parses a decimal string, treating anything unparseable as
// zero. Inputs come from an external API that occasionally omits or
// garbles numeric fields; absence of a number is not an error here.
func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
