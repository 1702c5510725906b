package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Trigger is an interactive element whose activation runs the registered handlers.
type Trigger interface {
	OnActivate(handler func(ctx context.Context))
}

// Button is an in-process click target.
type Button struct {
	ID string

	mu       sync.Mutex
	handlers []func(ctx context.Context)
}

func NewButton(id string) *Button {
	return &Button{ID: id}
}

// FindButton returns a Button for the element with the given id, usually TriggerID.
func FindButton(doc *goquery.Document, id string) (*Button, error) {
	if doc.Find("#"+id).Length() == 0 {
		return nil, fmt.Errorf("trigger #%s not found in page", id)
	}
	return NewButton(id), nil
}

func (b *Button) OnActivate(handler func(ctx context.Context)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Click runs every handler once, in registration order, and returns when they are done.
func (b *Button) Click(ctx context.Context) {
	b.mu.Lock()
	handlers := append([]func(ctx context.Context){}, b.handlers...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx)
	}
}
