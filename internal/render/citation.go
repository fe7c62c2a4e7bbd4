package render

import (
	"fmt"
	"html"
	"html/template"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Citation formats the journal or book citation line of a card. Records with
// neither get an empty citation.
func Citation(pub models.Publication) template.HTML {
	switch {
	case pub.HasJournal():
		return template.HTML(fmt.Sprintf("<em>%s</em>, %s(%s), %s",
			html.EscapeString(pub.Journal),
			html.EscapeString(string(pub.Volume)),
			html.EscapeString(string(pub.Issue)),
			html.EscapeString(string(pub.Pages))))
	case pub.HasBook():
		return template.HTML(fmt.Sprintf("In <em>%s</em> (pp. %s). %s",
			html.EscapeString(pub.Book),
			html.EscapeString(string(pub.Pages)),
			html.EscapeString(pub.Publisher)))
	default:
		return ""
	}
}

// ReaderCitation is the citation shown above the document viewer. Only
// journal records have one.
func ReaderCitation(pub models.Publication) template.HTML {
	if !pub.HasJournal() {
		return ""
	}
	return template.HTML(fmt.Sprintf("<em>%s</em>, %s(%s), %s (%d)",
		html.EscapeString(pub.Journal),
		html.EscapeString(string(pub.Volume)),
		html.EscapeString(string(pub.Issue)),
		html.EscapeString(string(pub.Pages)),
		pub.Year))
}
