package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Publication is one record of the publications catalog.
type Publication struct {
	ID                  string   `json:"id" yaml:"id"`
	Title               string   `json:"title" yaml:"title"`
	Authors             []string `json:"authors" yaml:"authors"`
	Year                int      `json:"year" yaml:"year"`
	Category            string   `json:"category" yaml:"category"`
	Keywords            []string `json:"keywords" yaml:"keywords"`
	Abstract            string   `json:"abstract" yaml:"abstract"`
	Journal             string   `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume              Text     `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue               Text     `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages               Text     `json:"pages,omitempty" yaml:"pages,omitempty"`
	Book                string   `json:"book,omitempty" yaml:"book,omitempty"`
	Publisher           string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	DownloadRequestable bool     `json:"downloadRequestable" yaml:"downloadRequestable"`
	Featured            bool     `json:"featured" yaml:"featured"`
	PreviewFile         string   `json:"previewFile" yaml:"previewFile"`
}

// Text is a citation field that catalogs write either as a string or a bare number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// HasJournal reports whether the record carries journal citation metadata.
func (p Publication) HasJournal() bool {
	return p.Journal != ""
}

// HasBook reports whether the record carries book citation metadata.
func (p Publication) HasBook() bool {
	return p.Book != ""
}

// CatalogDocument is the top-level shape of the catalog resource.
type CatalogDocument struct {
	Publications []Publication `json:"publications" yaml:"publications"`
}

// DownloadRequest is the payload submitted to the download-request endpoint.
type DownloadRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Institution   string `json:"institution,omitempty"`
	Purpose       string `json:"purpose"`
	PublicationID string `json:"publicationId"`
	AgreeToTerms  Flag   `json:"agreeToTerms"`
}

// Flag is a consent value. Forms and scripts send it as a boolean, a number
// or a string, so all three are accepted.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(x)
	case float64:
		*f = x != 0
	case string:
		*f = ParseFlag(x)
	default:
		return fmt.Errorf("invalid flag value %s", data)
	}
	return nil
}

// ParseFlag reads a textual consent value. Empty, "off", "no" and the false
// spellings of strconv.ParseBool are false; any other text is true.
func ParseFlag(s string) Flag {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "off", "no":
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return Flag(b)
	}
	return true
}

// DownloadResponse acknowledges an accepted download request.
type DownloadResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
	NextSteps string `json:"nextSteps"`
}

// ErrorResponse is the body of every JSON error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AuditRecord is what gets written to the audit sink for an accepted request.
type AuditRecord struct {
	RequestID     string    `json:"requestId"`
	PublicationID string    `json:"publicationId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Institution   string    `json:"institution"`
	Purpose       string    `json:"purpose"`
	Timestamp     time.Time `json:"timestamp"`
	IP            string    `json:"ip"`
}
