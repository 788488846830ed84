package usecase

import (
	"testing"

	"github.com/shopfeed/backend/internal/domain"
)

func TestAnalyzeRows(t *testing.T) {
	rows := []domain.Row{
		{Handle: "soap-1", Title: "Soap", VariantPrice: "100.00"},
		{Handle: "soap-1", ImageSrc: "y.jpg", ImagePosition: "2"},
		{Handle: "soap-1", Title: "Soap", VariantSKU: "A2", VariantPrice: "300.00"},
		{Handle: "jaggery-1", Title: "Jaggery", VariantPrice: "200.00"},
		{Handle: "tea-1", Title: "Tea", VariantPrice: ""}, // unpriced variant
	}

	analysis := AnalyzeRows(rows)

	if analysis.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", analysis.TotalRows)
	}
	if analysis.VariantRows != 4 || analysis.ImageRows != 1 {
		t.Errorf("row kinds = %d/%d, want 4/1", analysis.VariantRows, analysis.ImageRows)
	}
	if analysis.UniqueProducts != 3 {
		t.Errorf("UniqueProducts = %d, want 3", analysis.UniqueProducts)
	}
	if analysis.MinPrice != 100.00 || analysis.MaxPrice != 300.00 {
		t.Errorf("price range = %.2f-%.2f, want 100.00-300.00", analysis.MinPrice, analysis.MaxPrice)
	}
	if analysis.AvgPrice != 200.00 {
		t.Errorf("AvgPrice = %.2f, want 200.00", analysis.AvgPrice)
	}

	if len(analysis.Samples) != 3 {
		t.Fatalf("samples = %d, want 3", len(analysis.Samples))
	}
	if analysis.Samples[0].Handle != "soap-1" || analysis.Samples[1].Handle != "jaggery-1" {
		t.Errorf("sample order = %s, %s; want first variant row per handle", analysis.Samples[0].Handle, analysis.Samples[1].Handle)
	}
}

func TestAnalyzeRowsEmpty(t *testing.T) {
	analysis := AnalyzeRows(nil)

	if analysis.TotalRows != 0 || analysis.UniqueProducts != 0 {
		t.Errorf("expected zeroed analysis, got %+v", analysis)
	}
	if analysis.AvgPrice != 0 {
		t.Errorf("AvgPrice = %.2f, want 0", analysis.AvgPrice)
	}
}

func TestAnalyzeRowsCapsSamples(t *testing.T) {
	var rows []domain.Row
	for i := 0; i < 10; i++ {
		rows = append(rows, domain.Row{Handle: string(rune('a' + i)), Title: "P", VariantPrice: "10.00"})
	}

	analysis := AnalyzeRows(rows)

	if analysis.UniqueProducts != 10 {
		t.Errorf("UniqueProducts = %d, want 10", analysis.UniqueProducts)
	}
	if len(analysis.Samples) != maxAnalysisSamples {
		t.Errorf("samples = %d, want %d", len(analysis.Samples), maxAnalysisSamples)
	}
}
