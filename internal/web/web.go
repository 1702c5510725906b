// Package web holds the page that carries the fetchMovies button and the movies region.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type PageData struct {
	// SocketURL is the live view server. It takes precedence over Endpoint.
	SocketURL string
	// Endpoint is fetched by the page itself when there is no live view.
	// With neither set the page is a static document.
	Endpoint string
}

func Render(w io.Writer, data PageData) error {
	return indexTemplate.Execute(w, data)
}

func Page(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
