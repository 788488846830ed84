package shopify

import (
	"strings"

	"github.com/shopfeed/backend/internal/domain"
)

// Normalize resolves the optional fields of raw API products once, at the
// boundary, so the transformation pipeline never has to guard against nil
// slices or untrimmed handles. Products without a handle are dropped: a
// handle is the only identity a row can carry.
func Normalize(products []domain.RawProduct) []domain.RawProduct {
	normalized := make([]domain.RawProduct, 0, len(products))

	for _, p := range products {
		p.Handle = strings.TrimSpace(p.Handle)
		if p.Handle == "" {
			continue
		}

		if p.Options == nil {
			p.Options = []domain.ProductOption{}
		}
		if p.Variants == nil {
			p.Variants = []domain.RawVariant{}
		}
		if p.Images == nil {
			p.Images = []domain.RawImage{}
		}

		normalized = append(normalized, p)
	}

	return normalized
}
