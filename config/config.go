package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shopfeed/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Pricing PricingConfig
	Output  OutputConfig
	Cache   CacheConfig
	Brands  []domain.Brand
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds storefront catalog client configuration
type CatalogConfig struct {
	PageSize          int           `mapstructure:"page_size"`
	Timeout           time.Duration `mapstructure:"timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// PricingConfig holds the listing price constants
type PricingConfig struct {
	ProfitMarginPercent float64 `mapstructure:"profit_margin_percent"`
	Customs             float64 `mapstructure:"customs"`
	ShippingPricePerKG  float64 `mapstructure:"shipping_price_per_kg"`
}

// OutputConfig holds where brand tables are written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopfeed/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog client defaults
	v.SetDefault("catalog.page_size", 50)
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.requests_per_second", 2.0)

	// Pricing defaults
	v.SetDefault("pricing.profit_margin_percent", 40.0)
	v.SetDefault("pricing.customs", 0.0)
	v.SetDefault("pricing.shipping_price_per_kg", 1800.0)

	// Output defaults
	v.SetDefault("output.dir", "resources/products")

	// Cache defaults
	v.SetDefault("cache.ttl", "15m")

	// Default brand catalog; additional brands come from the config file
	v.SetDefault("brands", []map[string]interface{}{
		{
			"tag":              "divine_foods",
			"name":             "The Divine Foods",
			"url":              "https://www.thedivinefoods.com/",
			"best_sellers_url": "https://www.thedivinefoods.com/collections/best-sellers",
			"all_products_url": "https://www.thedivinefoods.com/collections/all",
		},
	})
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Output.Dir == "" {
		return fmt.Errorf("output directory is required (set SHOPFEED_OUTPUT_DIR)")
	}

	if config.Pricing.ProfitMarginPercent < 0 {
		return fmt.Errorf("profit margin percent must be >= 0, got: %.2f", config.Pricing.ProfitMarginPercent)
	}
	if config.Pricing.ShippingPricePerKG < 0 {
		return fmt.Errorf("shipping price per kg must be >= 0, got: %.2f", config.Pricing.ShippingPricePerKG)
	}

	if len(config.Brands) == 0 {
		return fmt.Errorf("at least one brand must be configured")
	}
	seen := make(map[string]bool)
	for _, b := range config.Brands {
		if b.Tag == "" {
			return fmt.Errorf("brand tag is required for every configured brand")
		}
		if seen[b.Tag] {
			return fmt.Errorf("duplicate brand tag: %s", b.Tag)
		}
		seen[b.Tag] = true
		if b.BestSellersURL == "" && b.AllProductsURL == "" {
			return fmt.Errorf("brand %s needs a collection URL", b.Tag)
		}
	}

	return nil
}
