// Package preview implements the page-limited document preview session.
package preview

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// DefaultPageLimit is the number of pages a preview may reach.
const DefaultPageLimit = 10

// WatermarkText is overlaid on the document viewer.
const WatermarkText = "PREVIEW - DO NOT DISTRIBUTE"

// Session is the viewing state for one publication's preview document.
// Cursor is 1-indexed and always within [1, Total].
type Session struct {
	ID          string             `json:"id"`
	Publication models.Publication `json:"publication"`
	Cursor      int                `json:"cursor"`
	Total       int                `json:"total"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewSession starts a session on page 1. total below 1 is raised to 1.
func NewSession(id string, pub models.Publication, total int) *Session {
	if total < 1 {
		total = 1
	}
	return &Session{
		ID:          id,
		Publication: pub,
		Cursor:      1,
		Total:       total,
		CreatedAt:   time.Now(),
	}
}

// Navigate moves the cursor by direction (-1 or +1). Moves that would leave
// [1, Total], and any other direction, are no-ops. It reports whether the
// cursor changed and the viewer needs a refresh.
func (s *Session) Navigate(direction int) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	next := s.Cursor + direction
	if next < 1 || next > s.Total {
		return false
	}
	s.Cursor = next
	return true
}

// CanPrev reports whether the previous control is enabled.
func (s *Session) CanPrev() bool {
	return s.Cursor > 1
}

// CanNext reports whether the next control is enabled.
func (s *Session) CanNext() bool {
	return s.Cursor < s.Total
}

// PageInfo is the page indicator text.
func (s *Session) PageInfo() string {
	return fmt.Sprintf("Page %d of %d", s.Cursor, s.Total)
}

// LimitNotice explains the preview bound to the reader.
func (s *Session) LimitNotice() string {
	return fmt.Sprintf("Only pages 1-%d are available for preview.", s.Total)
}

// ViewerURL addresses the current page of the preview document under
// docsBase by appending a page anchor.
func (s *Session) ViewerURL(docsBase string) string {
	return PageURL(docsBase, s.Publication.PreviewFile, s.Cursor)
}

// PageURL addresses page n of a preview document.
func PageURL(docsBase, previewFile string, n int) string {
	return fmt.Sprintf("%s/%s#page=%d&toolbar=0&navpanes=0&scrollbar=0",
		strings.TrimRight(docsBase, "/"), url.PathEscape(previewFile), n)
}

// State is the JSON view of a session after an operation.
type State struct {
	SessionID string `json:"sessionId"`
	Cursor    int    `json:"cursor"`
	Total     int    `json:"total"`
	CanPrev   bool   `json:"canPrev"`
	CanNext   bool   `json:"canNext"`
	PageInfo  string `json:"pageInfo"`
	ViewerURL string `json:"viewerUrl"`
	Moved     bool   `json:"moved"`
}

// StateOf snapshots s for a client.
func StateOf(s *Session, docsBase string, moved bool) State {
	return State{
		SessionID: s.ID,
		Cursor:    s.Cursor,
		Total:     s.Total,
		CanPrev:   s.CanPrev(),
		CanNext:   s.CanNext(),
		PageInfo:  s.PageInfo(),
		ViewerURL: s.ViewerURL(docsBase),
		Moved:     moved,
	}
}
