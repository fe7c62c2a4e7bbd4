package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/parquet-go/parquet-go"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

const sampleJSON = `{
  "publications": [
    {
      "id": "pub-2020-climate",
      "title": "Climate Adaptation in Rural Rwanda",
      "authors": ["A. Byiringiro", "J. Doe"],
      "year": 2020,
      "category": "Journal Article",
      "keywords": ["climate", "agriculture"],
      "abstract": "We study adaptation strategies.",
      "journal": "African Journal of Environment",
      "volume": 12,
      "issue": "3",
      "pages": "45-67",
      "downloadRequestable": true,
      "featured": true,
      "previewFile": "climate.pdf"
    },
    {
      "id": "pub-2021-water",
      "title": "Water Governance",
      "authors": ["A. Byiringiro"],
      "year": 2021,
      "category": "Book Chapter",
      "keywords": ["water", "policy"],
      "abstract": "A chapter on governance.",
      "book": "Handbook of Water Policy",
      "pages": "101-120",
      "publisher": "Routledge",
      "downloadRequestable": false,
      "featured": false,
      "previewFile": "water.pdf"
    }
  ]
}`

func wantSample() []models.Publication {
	return []models.Publication{
		{
			ID:                  "pub-2020-climate",
			Title:               "Climate Adaptation in Rural Rwanda",
			Authors:             []string{"A. Byiringiro", "J. Doe"},
			Year:                2020,
			Category:            "Journal Article",
			Keywords:            []string{"climate", "agriculture"},
			Abstract:            "We study adaptation strategies.",
			Journal:             "African Journal of Environment",
			Volume:              "12",
			Issue:               "3",
			Pages:               "45-67",
			DownloadRequestable: true,
			Featured:            true,
			PreviewFile:         "climate.pdf",
		},
		{
			ID:          "pub-2021-water",
			Title:       "Water Governance",
			Authors:     []string{"A. Byiringiro"},
			Year:        2021,
			Category:    "Book Chapter",
			Keywords:    []string{"water", "policy"},
			Abstract:    "A chapter on governance.",
			Book:        "Handbook of Water Policy",
			Pages:       "101-120",
			Publisher:   "Routledge",
			PreviewFile: "water.pdf",
		},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	path := "./publications.json"
	loader := NewLoader(path)

	if loader.Source() != path {
		t.Errorf("Expected source %s, got %s", path, loader.Source())
	}
}

func TestLoadFormats(t *testing.T) {
	jsonl := `{"id":"pub-2020-climate","title":"Climate Adaptation in Rural Rwanda","authors":["A. Byiringiro","J. Doe"],"year":2020,"category":"Journal Article","keywords":["climate","agriculture"],"abstract":"We study adaptation strategies.","journal":"African Journal of Environment","volume":"12","issue":3,"pages":"45-67","downloadRequestable":true,"featured":true,"previewFile":"climate.pdf"}

{"id":"pub-2021-water","title":"Water Governance","authors":["A. Byiringiro"],"year":2021,"category":"Book Chapter","keywords":["water","policy"],"abstract":"A chapter on governance.","book":"Handbook of Water Policy","pages":"101-120","publisher":"Routledge","previewFile":"water.pdf"}
`
	yamlDoc := `publications:
  - id: pub-2020-climate
    title: Climate Adaptation in Rural Rwanda
    authors: [A. Byiringiro, J. Doe]
    year: 2020
    category: Journal Article
    keywords: [climate, agriculture]
    abstract: We study adaptation strategies.
    journal: African Journal of Environment
    volume: 12
    issue: 3
    pages: 45-67
    downloadRequestable: true
    featured: true
    previewFile: climate.pdf
  - id: pub-2021-water
    title: Water Governance
    authors: [A. Byiringiro]
    year: 2021
    category: Book Chapter
    keywords: [water, policy]
    abstract: A chapter on governance.
    book: Handbook of Water Policy
    pages: 101-120
    publisher: Routledge
    previewFile: water.pdf
`

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "publications.json", content: sampleJSON},
		{name: "jsonl", file: "publications.jsonl", content: jsonl},
		{name: "yaml", file: "publications.yaml", content: yamlDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := NewLoader(path).Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if diff := cmp.Diff(wantSample(), got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publications.parquet")
	rows := []ParquetRow{
		{
			ID:                  "pub-2020-climate",
			Title:               "Climate Adaptation in Rural Rwanda",
			Authors:             []string{"A. Byiringiro", "J. Doe"},
			Year:                2020,
			Category:            "Journal Article",
			Keywords:            []string{"climate", "agriculture"},
			Abstract:            "We study adaptation strategies.",
			Journal:             "African Journal of Environment",
			Volume:              "12",
			Issue:               "3",
			Pages:               "45-67",
			DownloadRequestable: true,
			Featured:            true,
			PreviewFile:         "climate.pdf",
		},
		{
			ID:          "pub-2021-water",
			Title:       "Water Governance",
			Authors:     []string{"A. Byiringiro"},
			Year:        2021,
			Category:    "Book Chapter",
			Keywords:    []string{"water", "policy"},
			Abstract:    "A chapter on governance.",
			Book:        "Handbook of Water Policy",
			Pages:       "101-120",
			Publisher:   "Routledge",
			PreviewFile: "water.pdf",
		},
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		t.Fatalf("write parquet: %v", err)
	}

	got, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(wantSample(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	got, err := NewLoader(srv.URL + "/data/publications.json").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(wantSample(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

type mockDoer struct {
	body       string
	statusCode int
	err        error
	got        *http.Request
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.body)),
	}, nil
}

func TestLoadWithHTTPClient(t *testing.T) {
	tests := []struct {
		name    string
		doer    *mockDoer
		want    []models.Publication
		wantErr bool
	}{
		{
			name: "successful fetch",
			doer: &mockDoer{body: sampleJSON, statusCode: http.StatusOK},
			want: wantSample(),
		},
		{
			name:    "http error status",
			doer:    &mockDoer{body: "not found", statusCode: http.StatusNotFound},
			wantErr: true,
		},
		{
			name:    "network error",
			doer:    &mockDoer{err: io.ErrUnexpectedEOF},
			wantErr: true,
		},
		{
			name:    "malformed payload",
			doer:    &mockDoer{body: `{"publications":`, statusCode: http.StatusOK},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader("https://portfolio.example/data/publications.json", WithHTTPClient(tt.doer))
			got, err := loader.Load(context.Background())

			if tt.doer.got == nil {
				t.Fatal("custom client was not used")
			}
			if tt.doer.got.Method != http.MethodGet || tt.doer.got.Header.Get("Accept") != "application/json" {
				t.Errorf("request = %s Accept=%q", tt.doer.got.Method, tt.doer.got.Header.Get("Accept"))
			}
			if tt.wantErr {
				if !errors.Is(err, ErrLoad) {
					t.Errorf("Load() error = %v, want ErrLoad", err)
				}
				if got != nil {
					t.Errorf("Load() = %v, want nil on failure", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFailures(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	tests := []struct {
		name   string
		source func(t *testing.T) string
	}{
		{
			name:   "missing file",
			source: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name:   "malformed json",
			source: func(t *testing.T) string { return writeFile(t, "publications.json", `{"publications": [`) },
		},
		{
			name: "record without id",
			source: func(t *testing.T) string {
				return writeFile(t, "publications.json", `{"publications": [{"id": "a"}, {"title": "x"}]}`)
			},
		},
		{
			name: "duplicate id",
			source: func(t *testing.T) string {
				return writeFile(t, "publications.json", `{"publications": [{"id": "a"}, {"id": "a"}]}`)
			},
		},
		{
			name:   "unsupported extension",
			source: func(t *testing.T) string { return writeFile(t, "publications.csv", "id\n") },
		},
		{
			name:   "http error status",
			source: func(t *testing.T) string { return notFound.URL + "/publications.json" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLoader(tt.source(t)).Load(context.Background())
			if !errors.Is(err, ErrLoad) {
				t.Fatalf("expected ErrLoad, got %v", err)
			}
			if got != nil {
				t.Errorf("expected no records on failure, got %d", len(got))
			}
		})
	}
}
