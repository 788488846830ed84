package domain

// RawProduct represents a product as returned by a Shopify storefront's
// products.json endpoint. Optional fields are resolved to documented
// defaults at the client boundary (see infrastructure/shopify.Normalize),
// not inside the transformation logic.
type RawProduct struct {
	Handle      string          `json:"handle"`
	Title       string          `json:"title"`
	BodyHTML    string          `json:"body_html"`
	Vendor      string          `json:"vendor"`
	ProductType string          `json:"product_type"`
	Options     []ProductOption `json:"options"`
	Variants    []RawVariant    `json:"variants"`
	Images      []RawImage      `json:"images"`
}

// ProductOption is a named option axis (e.g. "Size"). Shopify exposes at
// most three per product; option values live on each variant positionally.
type ProductOption struct {
	Name string `json:"name"`
}

// RawVariant is one purchasable configuration of a product. Price is the
// cost to the business as a decimal string, not the customer-facing price.
type RawVariant struct {
	SKU              string `json:"sku"`
	Price            string `json:"price"`
	CompareAtPrice   string `json:"compare_at_price"`
	Grams            int    `json:"grams"`
	Option1          string `json:"option1"`
	Option2          string `json:"option2"`
	Option3          string `json:"option3"`
	Available        bool   `json:"available"`
	RequiresShipping bool   `json:"requires_shipping"`
	Taxable          bool   `json:"taxable"`
}

// RawImage is a product image. Index 0 in RawProduct.Images is the primary
// image; order is significant.
type RawImage struct {
	Src string `json:"src"`
}

// Brand is one storefront to scrape, injected from configuration rather
// than looked up from a static registry.
type Brand struct {
	Tag            string `json:"tag" mapstructure:"tag"`
	Name           string `json:"name" mapstructure:"name"`
	URL            string `json:"url" mapstructure:"url"`
	BestSellersURL string `json:"bestSellersUrl" mapstructure:"best_sellers_url"`
	AllProductsURL string `json:"allProductsUrl" mapstructure:"all_products_url"`
}
