package usecase

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopfeed/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	htmlTagRegex        = regexp.MustCompile(`<[^>]*>`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// Fixed values stamped onto every variant row of the import schema.
const (
	inventoryTracker   = "shopify"
	inventoryPolicy    = "deny"
	fulfillmentService = "manual"
	weightUnit         = "g"

	// Rows are created unpublished so an import never goes live by accident.
	publishedDefault = "FALSE"

	// Placeholder stock signal, not a real inventory count.
	availableQty   = "100"
	unavailableQty = "0"

	seoDescriptionMaxLen = 160
	seoEllipsis          = "..."
)

// RowExpander turns one raw product into its ordered sequence of import
// rows: one variant row per variant, plus image overflow rows for every
// image beyond the first, attached once per product after the first
// variant's row.
type RowExpander struct {
	calculator *PriceCalculator
	brands     map[string]domain.Brand
}

// NewRowExpander creates an expander. The brand table maps brand tags to
// their definitions and drives the title suffix; an unknown tag simply
// leaves titles unchanged.
func NewRowExpander(calculator *PriceCalculator, brands []domain.Brand) *RowExpander {
	byTag := make(map[string]domain.Brand, len(brands))
	for _, b := range brands {
		byTag[b.Tag] = b
	}
	return &RowExpander{calculator: calculator, brands: byTag}
}

// Expand produces the rows for a single product. A product with no
// variants expands to nothing. Row order is significant for downstream
// grouping by handle: variant 0 first, then all overflow image rows, then
// the remaining variant rows.
func (e *RowExpander) Expand(product domain.RawProduct, brandTag string) []domain.Row {
	rows := make([]domain.Row, 0, len(product.Variants)+len(product.Images))

	for i, variant := range product.Variants {
		rows = append(rows, e.buildVariantRow(product, variant, brandTag))

		// Overflow images attach to the first variant only, otherwise they
		// would be re-emitted once per variant.
		if i == 0 {
			rows = append(rows, buildOverflowRows(product)...)
		}
	}

	return rows
}

func (e *RowExpander) buildVariantRow(product domain.RawProduct, variant domain.RawVariant, brandTag string) domain.Row {
	listingPrice := e.calculator.ListingPrice(variant.Price, variant.Grams)
	body := unescapeHTML(product.BodyHTML)

	return domain.Row{
		Handle:   product.Handle,
		Title:    e.titleWithBrand(product.Title, brandTag),
		BodyHTML: body,
		Vendor:   product.Vendor,
		Type:     product.ProductType,

		// Tags carries the brand tag, not product tags, so downstream
		// tooling can group imports by brand.
		Tags:      brandTag,
		Published: publishedDefault,

		Option1Name:  optionName(product.Options, 0),
		Option1Value: variant.Option1,
		Option2Name:  optionName(product.Options, 1),
		Option2Value: variant.Option2,
		Option3Name:  optionName(product.Options, 2),
		Option3Value: variant.Option3,

		VariantSKU:                variant.SKU,
		VariantGrams:              strconv.Itoa(variant.Grams),
		VariantInventoryTracker:   inventoryTracker,
		VariantInventoryQty:       inventoryQty(variant.Available),
		VariantInventoryPolicy:    inventoryPolicy,
		VariantFulfillmentService: fulfillmentService,
		VariantPrice:              listingPrice,
		VariantRequiresShipping:   formatBool(variant.RequiresShipping),
		VariantTaxable:            formatBool(variant.Taxable),

		// Every variant row points at the primary image; extra images get
		// their own overflow rows.
		ImageSrc:      primaryImageSrc(product.Images),
		ImagePosition: "1",
		ImageAltText:  product.Title,

		GiftCard:       "FALSE",
		SEOTitle:       product.Title,
		SEODescription: seoDescription(body),

		GoogleMPN:           variant.SKU,
		GoogleCondition:     "new",
		GoogleCustomProduct: "TRUE",

		VariantImage:      primaryImageSrc(product.Images),
		VariantWeightUnit: weightUnit,

		CostPerItem: variant.Price,

		IncludedIndia:               "TRUE",
		PriceIndia:                  listingPrice,
		CompareAtPriceIndia:         variant.CompareAtPrice,
		IncludedInternational:       "TRUE",
		PriceInternational:          listingPrice,
		CompareAtPriceInternational: variant.CompareAtPrice,

		Status: variantStatus(variant.Available),
	}
}

// buildOverflowRows emits one near-empty row per image beyond the first,
// positions numbered from 2 in image order.
func buildOverflowRows(product domain.RawProduct) []domain.Row {
	if len(product.Images) <= 1 {
		return nil
	}

	rows := make([]domain.Row, 0, len(product.Images)-1)
	for i, image := range product.Images[1:] {
		rows = append(rows, domain.Row{
			Handle:        product.Handle,
			ImageSrc:      image.Src,
			ImagePosition: strconv.Itoa(i + 2),
			ImageAltText:  product.Title,
		})
	}
	return rows
}

// titleWithBrand suffixes the product title with the brand's display name
// when one is configured for the tag.
func (e *RowExpander) titleWithBrand(title, brandTag string) string {
	brand, ok := e.brands[brandTag]
	if !ok || brand.Name == "" {
		return title
	}
	return title + " - " + brand.Name
}

// seoDescription extracts plain text from an HTML body for the SEO field:
// tags stripped, whitespace runs collapsed, truncated to 160 characters
// with a trailing ellipsis when longer.
func seoDescription(body string) string {
	if body == "" {
		return ""
	}

	plain := htmlTagRegex.ReplaceAllString(body, "")
	plain = multipleSpacesRegex.ReplaceAllString(plain, " ")
	plain = strings.TrimSpace(plain)

	runes := []rune(plain)
	if len(runes) > seoDescriptionMaxLen {
		return string(runes[:seoDescriptionMaxLen-len(seoEllipsis)]) + seoEllipsis
	}
	return plain
}

func unescapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(s)
}

func optionName(options []domain.ProductOption, index int) string {
	if index >= len(options) {
		return ""
	}
	return options[index].Name
}

func primaryImageSrc(images []domain.RawImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].Src
}

func inventoryQty(available bool) string {
	if available {
		return availableQty
	}
	return unavailableQty
}

func variantStatus(available bool) string {
	if available {
		return "active"
	}
	return "draft"
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
