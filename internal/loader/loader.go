// Package loader fetches the movie collection and renders one card per movie
// into a display region each time its trigger is activated.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2/log"
)

const (
	// DefaultEndpoint is the movie collection of a local API server.
	DefaultEndpoint = "http://127.0.0.1:5000/api/v1/movies/"

	// TriggerID and RegionID are the element ids of the button and the card container.
	TriggerID = "fetchMovies"
	RegionID  = "movies"
)

// Logger is the diagnostic channel. log.DefaultLogger() satisfies it.
type Logger interface {
	Errorf(format string, v ...any)
	Debugf(format string, v ...any)
}

// Config holds the loader settings. Zero fields fall back to DefaultEndpoint,
// http.DefaultClient and the fiber logger.
type Config struct {
	Endpoint string
	Client   *http.Client
	Logger   Logger
}

// Loader is bound to one trigger and one region.
//
// Activations are neither queued nor cancelled. Each one is numbered when it starts;
// a response is rendered only if no later activation has started since, so the most
// recently issued request decides what the region shows.
type Loader struct {
	endpoint string
	client   *http.Client
	logger   Logger
	region   Region

	issued atomic.Uint64
	mu     sync.Mutex
}

func New(cfg Config, trigger Trigger, region Region) *Loader {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = log.DefaultLogger()
	}

	l := &Loader{
		endpoint: cfg.Endpoint,
		client:   cfg.Client,
		logger:   cfg.Logger,
		region:   region,
	}
	trigger.OnActivate(l.handle)
	return l
}

// handle is the trigger handler: failures are already logged by Load and go no further.
func (l *Loader) handle(ctx context.Context) {
	_ = l.Load(ctx)
}

// Load fetches the collection and replaces the region content with its cards.
// On failure the region is left untouched and one diagnostic entry is written.
func (l *Loader) Load(ctx context.Context) error {
	seq := l.issued.Add(1)

	movies, err := l.fetch(ctx)
	if err != nil {
		l.logger.Errorf("Error fetching movies: %v", err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.issued.Load() {
		l.logger.Debugf("Dropping movies of request %d, request %d was issued after it", seq, l.issued.Load())
		return nil
	}

	l.region.Clear()
	for _, m := range movies {
		l.region.Append(BuildCard(m))
	}

	if f, ok := l.region.(Flusher); ok {
		if err := f.Flush(); err != nil {
			l.logger.Errorf("Error publishing movies: %v", err)
			return err
		}
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context) ([]Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: l.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, &FetchError{URL: l.endpoint, Err: ErrNoData}
	}

	var movies []Movie
	if err := json.Unmarshal(env.Data, &movies); err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}
	return movies, nil
}
