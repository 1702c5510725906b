package socketio

import (
	"MovieList/internal/loader"

	"golang.org/x/net/html"
)

// socketRegion collects the cards of one render and publishes them in one event,
// so the page swaps its content at once.
type socketRegion struct {
	cards []*html.Node
	emit  func(cards string) error
}

func newSocketRegion(emit func(cards string) error) *socketRegion {
	return &socketRegion{emit: emit}
}

func (r *socketRegion) Clear() {
	r.cards = nil
}

func (r *socketRegion) Append(card *html.Node) {
	r.cards = append(r.cards, card)
}

func (r *socketRegion) Flush() error {
	out, err := loader.RenderCards(r.cards)
	if err != nil {
		return err
	}
	return r.emit(out)
}
