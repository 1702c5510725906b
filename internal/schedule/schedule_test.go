package schedule

import (
	"context"
	"testing"
	"time"
)

func TestNewTrigger_RejectsNonPositiveInterval(t *testing.T) {
	if _, err := NewTrigger(0); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := NewTrigger(-time.Second); err == nil {
		t.Fatalf("expected error for negative interval")
	}
}

func TestTrigger_FiresRepeatedly(t *testing.T) {
	tr, err := NewTrigger(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewTrigger: %v", err)
	}

	type key struct{}
	fired := make(chan any, 16)
	tr.OnActivate(func(ctx context.Context) {
		select {
		case fired <- ctx.Value(key{}):
		default:
		}
	})

	ctx := context.WithValue(context.Background(), key{}, "watch")
	if err := tr.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer tr.Stop()

	for i := 0; i < 2; i++ {
		select {
		case v := <-fired:
			if v != "watch" {
				t.Fatalf("handler got context value %v", v)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("activation %d did not happen", i+1)
		}
	}
}
