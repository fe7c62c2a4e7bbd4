package preview

import (
	"testing"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

func TestNavigateBounds(t *testing.T) {
	s := NewSession("s1", models.Publication{ID: "climate", PreviewFile: "climate.pdf"}, DefaultPageLimit)

	if s.Cursor != 1 {
		t.Fatalf("initial cursor = %d, want 1", s.Cursor)
	}
	if s.CanPrev() {
		t.Error("CanPrev() at first page")
	}
	if !s.CanNext() {
		t.Error("!CanNext() at first page")
	}

	if s.Navigate(-1) {
		t.Error("Navigate(-1) at cursor 1 moved")
	}
	if s.Cursor != 1 {
		t.Errorf("cursor = %d after no-op, want 1", s.Cursor)
	}

	for i := 2; i <= DefaultPageLimit; i++ {
		if !s.Navigate(1) {
			t.Fatalf("Navigate(+1) to %d did not move", i)
		}
		if s.Cursor != i {
			t.Fatalf("cursor = %d, want %d", s.Cursor, i)
		}
	}

	if s.Navigate(1) {
		t.Error("Navigate(+1) at total moved")
	}
	if s.Cursor != DefaultPageLimit {
		t.Errorf("cursor = %d, want %d", s.Cursor, DefaultPageLimit)
	}
	if s.CanNext() {
		t.Error("CanNext() at last page")
	}
	if !s.CanPrev() {
		t.Error("!CanPrev() at last page")
	}
}

func TestNavigateRejectsOtherDirections(t *testing.T) {
	s := NewSession("s1", models.Publication{}, 10)
	for _, d := range []int{0, 2, -2, 9} {
		if s.Navigate(d) {
			t.Errorf("Navigate(%d) moved", d)
		}
	}
	if s.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor)
	}
}

func TestNavigateStaysInRange(t *testing.T) {
	s := NewSession("s1", models.Publication{}, 3)
	moves := []int{-1, 1, 1, 1, 1, -1, -1, -1, -1, 1}
	for _, d := range moves {
		s.Navigate(d)
		if s.Cursor < 1 || s.Cursor > s.Total {
			t.Fatalf("cursor %d escaped [1, %d]", s.Cursor, s.Total)
		}
	}
	if s.Cursor != 2 {
		t.Errorf("final cursor = %d, want 2", s.Cursor)
	}
}

func TestSinglePageSession(t *testing.T) {
	s := NewSession("s1", models.Publication{}, 0)
	if s.Total != 1 {
		t.Fatalf("Total = %d, want 1", s.Total)
	}
	if s.CanPrev() || s.CanNext() {
		t.Error("single page session has enabled controls")
	}
}

func TestViewerURL(t *testing.T) {
	s := NewSession("s1", models.Publication{PreviewFile: "climate paper.pdf"}, 10)
	s.Navigate(1)

	want := "/docs/previews/climate%20paper.pdf#page=2&toolbar=0&navpanes=0&scrollbar=0"
	if got := s.ViewerURL("/docs/previews/"); got != want {
		t.Errorf("ViewerURL() = %q, want %q", got, want)
	}
	if got := s.PageInfo(); got != "Page 2 of 10" {
		t.Errorf("PageInfo() = %q", got)
	}
	if got := s.LimitNotice(); got != "Only pages 1-10 are available for preview." {
		t.Errorf("LimitNotice() = %q", got)
	}
}

func TestStateOf(t *testing.T) {
	s := NewSession("s1", models.Publication{PreviewFile: "a.pdf"}, 2)
	moved := s.Navigate(1)
	st := StateOf(s, "/docs/previews", moved)

	if !st.Moved || st.Cursor != 2 || st.Total != 2 || st.CanNext || !st.CanPrev {
		t.Errorf("unexpected state %+v", st)
	}
	if st.SessionID != "s1" {
		t.Errorf("SessionID = %q", st.SessionID)
	}
}
