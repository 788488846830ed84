package domain

// Headers is the fixed column schema of the Shopify bulk-import table, in
// write order. Row.Record must stay aligned with this list.
var Headers = []string{
	"Handle",
	"Title",
	"Body (HTML)",
	"Vendor",
	"Product Category",
	"Type",
	"Tags",
	"Published",
	"Option1 Name",
	"Option1 Value",
	"Option2 Name",
	"Option2 Value",
	"Option3 Name",
	"Option3 Value",
	"Variant SKU",
	"Variant Grams",
	"Variant Inventory Tracker",
	"Variant Inventory Qty",
	"Variant Inventory Policy",
	"Variant Fulfillment Service",
	"Variant Price",
	"Variant Compare At Price",
	"Variant Requires Shipping",
	"Variant Taxable",
	"Variant Barcode",
	"Image Src",
	"Image Position",
	"Image Alt Text",
	"Gift Card",
	"SEO Title",
	"SEO Description",
	"Google Shopping / Google Product Category",
	"Google Shopping / Gender",
	"Google Shopping / Age Group",
	"Google Shopping / MPN",
	"Google Shopping / Condition",
	"Google Shopping / Custom Product",
	"Variant Image",
	"Variant Weight Unit",
	"Variant Tax Code",
	"Cost per item",
	"Included / India",
	"Price / India",
	"Compare At Price / India",
	"Included / International",
	"Price / International",
	"Compare At Price / International",
	"Status",
}

// Row is one line of the import table. Two kinds share the shape: variant
// rows (Title non-empty) carry full product and pricing data; image
// overflow rows (Title empty) carry only Handle, Image Src, Image Position
// and Image Alt Text, attaching extra images to a handle.
type Row struct {
	Handle                        string
	Title                         string
	BodyHTML                      string
	Vendor                        string
	ProductCategory               string
	Type                          string
	Tags                          string
	Published                     string
	Option1Name                   string
	Option1Value                  string
	Option2Name                   string
	Option2Value                  string
	Option3Name                   string
	Option3Value                  string
	VariantSKU                    string
	VariantGrams                  string
	VariantInventoryTracker       string
	VariantInventoryQty           string
	VariantInventoryPolicy        string
	VariantFulfillmentService     string
	VariantPrice                  string
	VariantCompareAtPrice         string
	VariantRequiresShipping       string
	VariantTaxable                string
	VariantBarcode                string
	ImageSrc                      string
	ImagePosition                 string
	ImageAltText                  string
	GiftCard                      string
	SEOTitle                      string
	SEODescription                string
	GoogleProductCategory         string
	GoogleGender                  string
	GoogleAgeGroup                string
	GoogleMPN                     string
	GoogleCondition               string
	GoogleCustomProduct           string
	VariantImage                  string
	VariantWeightUnit             string
	VariantTaxCode                string
	CostPerItem                   string
	IncludedIndia                 string
	PriceIndia                    string
	CompareAtPriceIndia           string
	IncludedInternational         string
	PriceInternational            string
	CompareAtPriceInternational   string
	Status                        string
}

// IsVariantRow reports whether the row is a variant row as opposed to an
// image overflow row. The distinction is structural: overflow rows never
// carry a title.
func (r Row) IsVariantRow() bool {
	return r.Title != ""
}

// Key derives the row's deduplication identity from Handle and Variant SKU.
func (r Row) Key() VariantKey {
	return NewVariantKey(r.Handle, r.VariantSKU)
}

// Record renders the row as a CSV record aligned with Headers.
func (r Row) Record() []string {
	return []string{
		r.Handle,
		r.Title,
		r.BodyHTML,
		r.Vendor,
		r.ProductCategory,
		r.Type,
		r.Tags,
		r.Published,
		r.Option1Name,
		r.Option1Value,
		r.Option2Name,
		r.Option2Value,
		r.Option3Name,
		r.Option3Value,
		r.VariantSKU,
		r.VariantGrams,
		r.VariantInventoryTracker,
		r.VariantInventoryQty,
		r.VariantInventoryPolicy,
		r.VariantFulfillmentService,
		r.VariantPrice,
		r.VariantCompareAtPrice,
		r.VariantRequiresShipping,
		r.VariantTaxable,
		r.VariantBarcode,
		r.ImageSrc,
		r.ImagePosition,
		r.ImageAltText,
		r.GiftCard,
		r.SEOTitle,
		r.SEODescription,
		r.GoogleProductCategory,
		r.GoogleGender,
		r.GoogleAgeGroup,
		r.GoogleMPN,
		r.GoogleCondition,
		r.GoogleCustomProduct,
		r.VariantImage,
		r.VariantWeightUnit,
		r.VariantTaxCode,
		r.CostPerItem,
		r.IncludedIndia,
		r.PriceIndia,
		r.CompareAtPriceIndia,
		r.IncludedInternational,
		r.PriceInternational,
		r.CompareAtPriceInternational,
		r.Status,
	}
}

// RowFromRecord rebuilds a Row from a CSV record using a header-name ->
// column-index map, so tables written with extra or reordered columns can
// still be read back. Missing columns come back as empty strings.
func RowFromRecord(record []string, index map[string]int) Row {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	return Row{
		Handle:                      field("Handle"),
		Title:                       field("Title"),
		BodyHTML:                    field("Body (HTML)"),
		Vendor:                      field("Vendor"),
		ProductCategory:             field("Product Category"),
		Type:                        field("Type"),
		Tags:                        field("Tags"),
		Published:                   field("Published"),
		Option1Name:                 field("Option1 Name"),
		Option1Value:                field("Option1 Value"),
		Option2Name:                 field("Option2 Name"),
		Option2Value:                field("Option2 Value"),
		Option3Name:                 field("Option3 Name"),
		Option3Value:                field("Option3 Value"),
		VariantSKU:                  field("Variant SKU"),
		VariantGrams:                field("Variant Grams"),
		VariantInventoryTracker:     field("Variant Inventory Tracker"),
		VariantInventoryQty:         field("Variant Inventory Qty"),
		VariantInventoryPolicy:      field("Variant Inventory Policy"),
		VariantFulfillmentService:   field("Variant Fulfillment Service"),
		VariantPrice:                field("Variant Price"),
		VariantCompareAtPrice:       field("Variant Compare At Price"),
		VariantRequiresShipping:     field("Variant Requires Shipping"),
		VariantTaxable:              field("Variant Taxable"),
		VariantBarcode:              field("Variant Barcode"),
		ImageSrc:                    field("Image Src"),
		ImagePosition:               field("Image Position"),
		ImageAltText:                field("Image Alt Text"),
		GiftCard:                    field("Gift Card"),
		SEOTitle:                    field("SEO Title"),
		SEODescription:              field("SEO Description"),
		GoogleProductCategory:       field("Google Shopping / Google Product Category"),
		GoogleGender:                field("Google Shopping / Gender"),
		GoogleAgeGroup:              field("Google Shopping / Age Group"),
		GoogleMPN:                   field("Google Shopping / MPN"),
		GoogleCondition:             field("Google Shopping / Condition"),
		GoogleCustomProduct:         field("Google Shopping / Custom Product"),
		VariantImage:                field("Variant Image"),
		VariantWeightUnit:           field("Variant Weight Unit"),
		VariantTaxCode:              field("Variant Tax Code"),
		CostPerItem:                 field("Cost per item"),
		IncludedIndia:               field("Included / India"),
		PriceIndia:                  field("Price / India"),
		CompareAtPriceIndia:         field("Compare At Price / India"),
		IncludedInternational:       field("Included / International"),
		PriceInternational:          field("Price / International"),
		CompareAtPriceInternational: field("Compare At Price / International"),
		Status:                      field("Status"),
	}
}
