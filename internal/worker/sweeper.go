package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"foodshare/internal/pkg/clock"
	"foodshare/internal/usecase/commands"
)

// Sweeper periodically removes perishable items that are at or past the
// removal threshold. One run executes immediately on start, then one per
// tick. A run that overlaps the next tick makes that tick a no-op rather
// than stacking a second sweep.
type Sweeper struct {
	commands commands.PerishableCommands
	clock    clock.Clock
	interval time.Duration

	running atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

func NewSweeper(cmds commands.PerishableCommands, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		commands: cmds,
		clock:    clk,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.loop(ctx)
}

func (s *Sweeper) Stop() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		if s.done != nil {
			<-s.done
		}
	})
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		slog.Warn("perishable sweep still in progress, skipping tick")
		return
	}
	defer s.running.Store(false)

	removed, err := s.commands.SweepExpired(ctx, s.clock.Now())
	if err != nil {
		slog.Error("perishable sweep failed", "error", err)
		return
	}

	if len(removed) > 0 {
		slog.Info("swept expired perishable items", "count", len(removed))
	}
}
