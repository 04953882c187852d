package messages

import (
	"sync"

	"github.com/automoto/shoutybird/config"
)

// ActionQueue carries discrete input commands from input handling to the
// simulation. Producers and the draining tick may run on different goroutines.
type ActionQueue struct {
	mu      sync.Mutex
	pending []config.ActionID
}

// NewActionQueue returns an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Enqueue appends an action for the next tick.
func (q *ActionQueue) Enqueue(action config.ActionID) {
	if q == nil || action == config.ActionNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, action)
	q.mu.Unlock()
}

// Drain removes and returns every pending action in enqueue order.
func (q *ActionQueue) Drain() []config.ActionID {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len reports how many actions are waiting.
func (q *ActionQueue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
