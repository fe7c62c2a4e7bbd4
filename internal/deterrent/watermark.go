package deterrent

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Marker is the class that records an image has been watermarked.
const Marker = "watermarked"

const (
	containerHTML = `<span class="watermark-container"></span>`
	overlayHTML   = `<span class="watermark-overlay"></span>`
)

// WatermarkSelection wraps every image in sel that lacks the marker with a
// decorative overlay and marks it. Already marked images are left alone, so
// repeated calls are no-ops. It returns the number of images changed.
func WatermarkSelection(sel *goquery.Selection) int {
	count := 0
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		if img.HasClass(Marker) {
			return
		}
		img.WrapHtml(containerHTML)
		img.AfterHtml(overlayHTML)
		img.AddClass(Marker)
		img.SetAttr("draggable", "false")
		count++
	})
	return count
}

// Watermark applies WatermarkSelection to a whole HTML page.
func Watermark(page []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	if WatermarkSelection(doc.Selection) == 0 {
		return page, nil
	}
	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return []byte(out), nil
}
