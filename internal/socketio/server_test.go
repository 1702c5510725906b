package socketio

import (
	"MovieList/internal/loader"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestLiveLoader_EachSocketGetsItsOwnCards(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, `{"data":[{"name":"Heat","coverImage":"heat.jpg"}]}`)
	}))
	defer srv.Close()

	cfg := loader.Config{Endpoint: srv.URL, Logger: &nopLogger{}}
	var first, second []string
	fetchFirst := newLiveLoader(cfg, func(cards string) error {
		first = append(first, cards)
		return nil
	})
	newLiveLoader(cfg, func(cards string) error {
		second = append(second, cards)
		return nil
	})

	fetchFirst(context.Background())

	if len(first) != 1 || !strings.Contains(first[0], "<h2>Heat</h2>") || !strings.Contains(first[0], `src="/static/images/heat.jpg"`) {
		t.Fatalf("first socket got %q", first)
	}
	if len(second) != 0 {
		t.Fatalf("second socket must not receive cards it did not ask for, got %q", second)
	}
	if n := requests.Load(); n != 1 {
		t.Fatalf("expected one request, got %d", n)
	}
}

func TestLiveLoader_EmitFailureIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	logger := &nopLogger{}
	fetch := newLiveLoader(loader.Config{Endpoint: srv.URL, Logger: logger}, func(string) error {
		return errors.New("socket closed")
	})

	fetch(context.Background())

	if logger.errors != 1 {
		t.Fatalf("expected one diagnostic, got %d", logger.errors)
	}
}
