package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopfeed/backend/internal/domain"
)

// Store persists brand tables as one CSV file per brand under a single
// output directory, named <tag>.csv. It implements domain.TableStore.
type Store struct {
	outputDir string
}

// NewStore creates a CSV-backed table store rooted at outputDir.
func NewStore(outputDir string) *Store {
	return &Store{outputDir: outputDir}
}

// Path returns the CSV file path for a brand. Brand tags are sanitized
// upstream, so the tag maps to the filename directly.
func (s *Store) Path(brandTag string) string {
	return filepath.Join(s.outputDir, brandTag+".csv")
}

// ReadState reports whether the brand's CSV exists and re-derives the
// variant key set from its Handle and Variant SKU columns. A file that
// cannot be parsed is reported as TableStateEmpty so the caller recreates
// it; the condition is logged, not raised.
func (s *Store) ReadState(ctx context.Context, brandTag string) (domain.TableState, domain.KeySet, error) {
	path := s.Path(brandTag)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return domain.TableStateEmpty, domain.KeySet{}, nil
	}
	if err != nil {
		return domain.TableStateEmpty, nil, fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		log.Printf("[CSV] warning: unreadable table %s, treating as empty: %v", path, err)
		return domain.TableStateEmpty, domain.KeySet{}, nil
	}

	index := headerIndex(records[0])
	handleCol, hasHandle := index["Handle"]
	skuCol, hasSKU := index["Variant SKU"]
	if !hasHandle || !hasSKU {
		log.Printf("[CSV] warning: table %s missing key columns, treating as empty", path)
		return domain.TableStateEmpty, domain.KeySet{}, nil
	}

	keys := domain.KeySet{}
	for _, record := range records[1:] {
		if handleCol >= len(record) {
			continue
		}
		handle := record[handleCol]
		if handle == "" {
			// Variant identity needs a handle; blank rows cannot be keyed.
			continue
		}
		sku := ""
		if hasSKU && skuCol < len(record) {
			sku = record[skuCol]
		}
		keys.Add(domain.NewVariantKey(handle, sku))
	}

	return domain.TableStateExisting, keys, nil
}

// Create writes a fresh table: header first, then the rows.
func (s *Store) Create(ctx context.Context, brandTag string, rows []domain.Row) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := s.Path(brandTag)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating table %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(domain.Headers); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := writeRows(writer, rows); err != nil {
		return fmt.Errorf("writing rows to %s: %w", path, err)
	}

	log.Printf("[CSV] created %s with %d rows", path, len(rows))
	return nil
}

// Append adds rows to an existing table. The rows are already deduplicated
// by the merge engine; no re-checking happens here.
func (s *Store) Append(ctx context.Context, brandTag string, rows []domain.Row) error {
	path := s.Path(brandTag)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening table %s for append: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writeRows(writer, rows); err != nil {
		return fmt.Errorf("appending rows to %s: %w", path, err)
	}

	log.Printf("[CSV] appended %d rows to %s", len(rows), path)
	return nil
}

// ReadRows returns every persisted row in table order.
func (s *Store) ReadRows(ctx context.Context, brandTag string) ([]domain.Row, error) {
	path := s.Path(brandTag)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, brandTag)
	}
	if err != nil {
		return nil, fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := headerIndex(records[0])
	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, domain.RowFromRecord(record, index))
	}
	return rows, nil
}

func writeRows(writer *csv.Writer, rows []domain.Row) error {
	for _, row := range rows {
		if err := writer.Write(row.Record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return index
}
