package usecase

import (
	"github.com/shopfeed/backend/internal/domain"
)

// TableAnalysis summarizes a persisted brand table for reports.
type TableAnalysis struct {
	Brand          string          `json:"brand"`
	Path           string          `json:"path,omitempty"`
	TotalRows      int             `json:"totalRows"`
	VariantRows    int             `json:"variantRows"`
	ImageRows      int             `json:"imageRows"`
	UniqueProducts int             `json:"uniqueProducts"`
	MinPrice       float64         `json:"minPrice"`
	MaxPrice       float64         `json:"maxPrice"`
	AvgPrice       float64         `json:"avgPrice"`
	Samples        []ProductSample `json:"samples"`
}

// ProductSample is one representative product in an analysis report.
type ProductSample struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
	Price  string `json:"price"`
}

const maxAnalysisSamples = 5

// AnalyzeRows computes summary statistics over persisted rows: counts by
// row kind, distinct handles, and the price range over variant rows with a
// positive price. The first variant row of each of the first five handles
// becomes a sample.
func AnalyzeRows(rows []domain.Row) *TableAnalysis {
	analysis := &TableAnalysis{TotalRows: len(rows)}

	seenHandles := make(map[string]bool)
	var priceSum float64
	var priceCount int

	for _, row := range rows {
		if !row.IsVariantRow() {
			analysis.ImageRows++
			continue
		}
		analysis.VariantRows++

		if !seenHandles[row.Handle] {
			seenHandles[row.Handle] = true
			if len(analysis.Samples) < maxAnalysisSamples {
				analysis.Samples = append(analysis.Samples, ProductSample{
					Handle: row.Handle,
					Title:  row.Title,
					Price:  row.VariantPrice,
				})
			}
		}

		price := coerceFloat(row.VariantPrice)
		if price <= 0 {
			continue
		}
		if priceCount == 0 || price < analysis.MinPrice {
			analysis.MinPrice = price
		}
		if price > analysis.MaxPrice {
			analysis.MaxPrice = price
		}
		priceSum += price
		priceCount++
	}

	analysis.UniqueProducts = len(seenHandles)
	if priceCount > 0 {
		analysis.AvgPrice = priceSum / float64(priceCount)
	}

	return analysis
}
