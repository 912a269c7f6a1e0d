// Package worker runs periodic background jobs next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type TickFunc func(ctx context.Context) error

// Loop calls Tick every Interval until its context is canceled.
type Loop struct {
	Name     string
	Interval time.Duration
	Tick     TickFunc
	Logger   *slog.Logger
}

func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(l.Interval)
	defer t.Stop()

	// kick immediately
	l.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			l.tick(ctx)
		}
	}
}

func (l *Loop) tick(ctx context.Context) {
	if err := l.Tick(ctx); err != nil && ctx.Err() == nil {
		l.Logger.Warn("worker tick failed", "worker", l.Name, "error", err.Error())
	}
}

// Group starts loops together and stops them together.
type Group struct {
	loops  []*Loop
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGroup(loops ...*Loop) *Group {
	return &Group{loops: loops}
}

func (g *Group) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	for _, l := range g.loops {
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			_ = l.Run(ctx)
		}()
	}
}

// Stop cancels every loop and waits for in-flight ticks or ctx, whichever ends first.
func (g *Group) Stop(ctx context.Context) error {
	if g.cancel == nil {
		return nil
	}
	g.cancel()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
