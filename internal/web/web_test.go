package web

import (
	"strings"
	"testing"
)

func TestPage_Static(t *testing.T) {
	b, err := Page(PageData{})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	s := string(b)
	for _, want := range []string{`id="fetchMovies"`, `id="movies"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("page misses %s", want)
		}
	}
	if strings.Contains(s, "<script") {
		t.Fatalf("static page should carry no script")
	}
}

func TestPage_FetchesEndpointWithoutLiveView(t *testing.T) {
	b, err := Page(PageData{Endpoint: "/api/v1/movies/"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`getElementById("fetchMovies").addEventListener("click"`,
		`fetch("`,
		`api`,
		`replaceChildren`,
		`Error fetching movies:`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("page misses %s:\n%s", want, b)
		}
	}
	if strings.Contains(s, "socket.io") {
		t.Fatalf("page without live view should not load socket.io")
	}
}

func TestPage_Live(t *testing.T) {
	b, err := Page(PageData{SocketURL: "http://127.0.0.1:5001"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `io("http:`) || !strings.Contains(s, `127.0.0.1:5001")`) {
		t.Fatalf("socket url not embedded as a JS string:\n%s", b)
	}
}
