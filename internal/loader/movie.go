package loader

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Movie is the client view of one entry of the collection endpoint.
// Missing or null fields decode to blanks and render as such.
type Movie struct {
	Name        string   `json:"name"`
	Genres      []string `json:"genres"`
	Directors   []string `json:"directors"`
	ReleaseYear Text     `json:"releaseYear"`
	Ratings     Text     `json:"ratings"`
	CoverImage  string   `json:"coverImage"`
}

// Text is a display-only value sent either as a JSON string or a JSON number.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}
