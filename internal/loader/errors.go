package loader

import (
	"errors"
	"fmt"
)

var ErrNoData = errors.New("response has no data field")

// FetchError covers every way a load can fail before rendering: the request itself,
// a non-2xx status, or a body that is not a movie collection.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
