package core

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is anything the loop can advance by one fixed interval.
type Ticker interface {
	Tick(intervalMs float64)
}

// LoopStats counts ticks that ran and ticks that were skipped.
type LoopStats struct {
	Ticks   uint64
	Skipped uint64
}

// GameLoop drives a Ticker at a fixed wall-clock interval. The interval, not
// the measured time, is what the target is told has elapsed.
type GameLoop struct {
	target   Ticker
	interval time.Duration

	busy    atomic.Bool
	ticks   atomic.Uint64
	skipped atomic.Uint64

	// OnTick, if set, runs on the ticking goroutine after each completed tick.
	OnTick func(tick uint64)

	running  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewGameLoop returns a loop for target. A non-positive interval falls back
// to 10ms.
func NewGameLoop(target Ticker, interval time.Duration) *GameLoop {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return &GameLoop{
		target:   target,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called or ctx is done. It blocks.
func (g *GameLoop) Run(ctx context.Context) {
	if !g.running.CompareAndSwap(false, true) {
		log.Println("Game loop already running")
		return
	}
	defer g.running.Store(false)

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("Game loop started at %v per tick", g.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.TickOnce()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// TickOnce runs one tick unless another is still in flight, in which case the
// tick is dropped (not queued) and false is returned.
func (g *GameLoop) TickOnce() bool {
	if g.target == nil {
		return false
	}
	if !g.busy.CompareAndSwap(false, true) {
		g.skipped.Add(1)
		return false
	}
	n := g.run()
	if g.OnTick != nil {
		g.OnTick(n)
	}
	return true
}

// run ticks the target with the busy flag held. The flag is released even if
// the tick panics, so a recovered panic does not freeze the loop.
func (g *GameLoop) run() uint64 {
	defer g.busy.Store(false)
	g.target.Tick(g.IntervalMs())
	return g.ticks.Add(1)
}

// Interval returns the configured tick interval.
func (g *GameLoop) Interval() time.Duration {
	return g.interval
}

// IntervalMs returns the tick interval in milliseconds.
func (g *GameLoop) IntervalMs() float64 {
	return float64(g.interval) / float64(time.Millisecond)
}

// Stats returns the tick counters.
func (g *GameLoop) Stats() LoopStats {
	return LoopStats{Ticks: g.ticks.Load(), Skipped: g.skipped.Load()}
}
