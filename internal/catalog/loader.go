package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// ErrLoad marks every failure to fetch or parse the catalog resource.
var ErrLoad = errors.New("unable to load publications")

// Loader fetches the publications catalog from a file or an HTTP(S) URL.
type Loader struct {
	source string
	client Doer
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for remote catalogs.
func WithHTTPClient(d Doer) Option {
	return func(l *Loader) {
		l.client = d
	}
}

// NewLoader creates a loader for the given catalog source.
func NewLoader(source string, opts ...Option) *Loader {
	l := &Loader{
		source: source,
		client: defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured catalog location.
func (l *Loader) Source() string {
	return l.source
}

// Load reads the whole catalog. On any failure it returns a nil slice and an
// error wrapping ErrLoad, never a partially populated catalog.
func (l *Loader) Load(ctx context.Context) ([]models.Publication, error) {
	records, err := l.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := validate(records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	slog.Debug("Catalog loaded", "source", l.source, "records", len(records))
	return records, nil
}

func (l *Loader) load(ctx context.Context) ([]models.Publication, error) {
	if isRemote(l.source) {
		return l.fetchRemote(ctx)
	}

	ext := strings.ToLower(filepath.Ext(l.source))
	switch ext {
	case ".json":
		return l.loadJSON()
	case ".jsonl":
		return l.loadJSONL()
	case ".yaml", ".yml":
		return l.loadYAML()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .jsonl, .yaml, .parquet)", ext)
	}
}

func (l *Loader) loadJSON() ([]models.Publication, error) {
	file, err := os.Open(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	return decodeJSON(file)
}

func decodeJSON(r io.Reader) ([]models.Publication, error) {
	var doc models.CatalogDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Publications, nil
}

// loadJSONL reads one publication per line
func (l *Loader) loadJSONL() ([]models.Publication, error) {
	file, err := os.Open(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var records []models.Publication
	scanner := bufio.NewScanner(file)

	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var record models.Publication
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	return records, nil
}

func (l *Loader) loadYAML() ([]models.Publication, error) {
	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc models.CatalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Publications, nil
}

func (l *Loader) loadParquet() ([]models.Publication, error) {
	file, err := os.Open(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet catalog opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[ParquetRow](pf)
	defer reader.Close()

	var records []models.Publication
	rows := make([]ParquetRow, 128)
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			records = append(records, row.Publication())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return records, nil
}

func validate(records []models.Publication) error {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			return fmt.Errorf("record %d has no id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("duplicate publication id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}
