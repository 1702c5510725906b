package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Trigger activates its handlers every interval, starting right away.
type Trigger struct {
	scheduler gocron.Scheduler
	interval  time.Duration

	mu       sync.Mutex
	ctx      context.Context
	handlers []func(ctx context.Context)
}

func NewTrigger(interval time.Duration) (*Trigger, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("schedule interval must be positive, got %s", interval)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Error("Error while creating scheduler:", err)
		return nil, err
	}

	return &Trigger{
		scheduler: s,
		interval:  interval,
		ctx:       context.Background(),
	}, nil
}

func (t *Trigger) OnActivate(handler func(ctx context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = append(t.handlers, handler)
}

// Start schedules the activations. ctx is handed to every handler.
func (t *Trigger) Start(ctx context.Context) error {
	t.mu.Lock()
	t.ctx = ctx
	t.mu.Unlock()

	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.interval),
		gocron.NewTask(t.fire),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Error("Error while creating job:", err)
		return err
	}

	t.scheduler.Start()
	return nil
}

func (t *Trigger) Stop() error {
	return t.scheduler.Shutdown()
}

func (t *Trigger) fire() {
	t.mu.Lock()
	ctx := t.ctx
	handlers := append([]func(ctx context.Context){}, t.handlers...)
	t.mu.Unlock()

	for _, h := range handlers {
		h(ctx)
	}
}
