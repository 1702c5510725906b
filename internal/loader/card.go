package loader

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// ImageBase is the path cover filenames are resolved against.
	ImageBase = "/static/images/"
	// CardClass is the class of every card element.
	CardClass = "movie-card"
)

// BuildCard builds the card fragment of one movie as a detached node tree.
// Every value ends up in a text node or an attribute, so html.Render escapes it.
func BuildCard(m Movie) *html.Node {
	return appendChildren(element(atom.Div, attr("class", CardClass)),
		appendChildren(element(atom.H2), text(m.Name)),
		line("Genre:", strings.Join(m.Genres, ", ")),
		line("Director:", strings.Join(m.Directors, ", ")),
		line("Release Year:", string(m.ReleaseYear)),
		line("Ratings:", string(m.Ratings)+"/10"),
		element(atom.Img, attr("src", CoverURL(m.CoverImage)), attr("alt", m.Name)),
	)
}

// CoverURL resolves a cover filename against ImageBase. The filename is a single
// path segment; slashes are escaped.
func CoverURL(filename string) string {
	return ImageBase + url.PathEscape(filename)
}

// RenderCards renders cards back to back.
func RenderCards(cards []*html.Node) (string, error) {
	var sb strings.Builder
	for _, c := range cards {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func line(label, value string) *html.Node {
	return appendChildren(element(atom.P),
		appendChildren(element(atom.Strong), text(label)),
		text(" "+value),
	)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendChildren(n *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}
