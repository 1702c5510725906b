package loader

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Region is the display region cards are rendered into.
type Region interface {
	Clear()
	Append(card *html.Node)
}

// Flusher is implemented by regions that publish their content after a render.
type Flusher interface {
	Flush() error
}

// DocumentRegion is an element of a parsed HTML document.
type DocumentRegion struct {
	sel *goquery.Selection
}

// FindRegion looks up the element with the given id, usually RegionID.
func FindRegion(doc *goquery.Document, id string) (*DocumentRegion, error) {
	sel := doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("region #%s not found in page", id)
	}
	return &DocumentRegion{sel: sel.First()}, nil
}

func (r *DocumentRegion) Clear() {
	r.sel.Empty()
}

func (r *DocumentRegion) Append(card *html.Node) {
	r.sel.AppendNodes(card)
}

// Cards returns the rendered card elements.
func (r *DocumentRegion) Cards() *goquery.Selection {
	return r.sel.ChildrenFiltered("." + CardClass)
}

// HTML returns the inner HTML of the region.
func (r *DocumentRegion) HTML() (string, error) {
	return r.sel.Html()
}
