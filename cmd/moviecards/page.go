package main

import (
	"MovieList/internal/loader"
	"io"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// pageSink is the #movies region of a page; after every render the whole page is written out.
type pageSink struct {
	*loader.DocumentRegion
	doc  *goquery.Document
	path string
}

func (p *pageSink) Flush() error {
	if p.path == "" {
		return writePage(os.Stdout, p.doc)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".moviecards-*.html")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := writePage(tmp, p.doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.path)
}

func writePage(w io.Writer, doc *goquery.Document) error {
	if err := html.Render(w, doc.Nodes[0]); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
