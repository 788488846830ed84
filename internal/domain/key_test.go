package domain

import "testing"

func TestNewVariantKey(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		sku    string
		want   VariantKey
	}{
		{"plain", "turmeric-soap", "TS-01", VariantKey{"turmeric-soap", "TS-01"}},
		{"trims both sides", " turmeric-soap ", " TS-01 ", VariantKey{"turmeric-soap", "TS-01"}},
		{"blank sku gets sentinel", "turmeric-soap", "", VariantKey{"turmeric-soap", NoSKUSentinel}},
		{"whitespace sku gets sentinel", "turmeric-soap", "   ", VariantKey{"turmeric-soap", NoSKUSentinel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewVariantKey(tt.handle, tt.sku); got != tt.want {
				t.Errorf("NewVariantKey(%q, %q) = %v, want %v", tt.handle, tt.sku, got, tt.want)
			}
		})
	}
}

func TestVariantKeyString(t *testing.T) {
	k := NewVariantKey("turmeric-soap", "")
	if got := k.String(); got != "turmeric-soap::NO_SKU" {
		t.Errorf("String() = %q", got)
	}
}

func TestKeySet(t *testing.T) {
	set := make(KeySet)
	k := NewVariantKey("turmeric-soap", "TS-01")

	if set.Contains(k) {
		t.Error("empty set should not contain key")
	}
	set.Add(k)
	if !set.Contains(k) {
		t.Error("set should contain added key")
	}

	// Differently-spaced input normalizes to the same key.
	if !set.Contains(NewVariantKey(" turmeric-soap", "TS-01 ")) {
		t.Error("trimmed key should match")
	}
}

func TestRowRecordRoundTrip(t *testing.T) {
	row := Row{
		Handle:       "turmeric-soap",
		Title:        "Turmeric Soap - The Divine Foods",
		BodyHTML:     "Handmade soap",
		Vendor:       "The Divine Foods",
		Tags:         "divine_foods",
		Published:    "FALSE",
		VariantSKU:   "TS-01",
		VariantPrice: "450.00",
		Status:       "active",
	}

	record := row.Record()
	if len(record) != len(Headers) {
		t.Fatalf("len(Record()) = %d, want %d", len(record), len(Headers))
	}

	index := make(map[string]int, len(Headers))
	for i, h := range Headers {
		index[h] = i
	}
	got := RowFromRecord(record, index)
	if got != row {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, row)
	}
}

func TestIsVariantRow(t *testing.T) {
	variant := Row{Handle: "turmeric-soap", Title: "Turmeric Soap"}
	overflow := Row{Handle: "turmeric-soap", ImageSrc: "https://cdn.example.com/2.jpg"}

	if !variant.IsVariantRow() {
		t.Error("row with title should be a variant row")
	}
	if overflow.IsVariantRow() {
		t.Error("row without title should be an overflow image row")
	}
}
