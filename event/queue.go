package event

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-pong/parameter"
)

// Queue carries one tick's events from the engine to the router
// Push and Consume both run on the loop goroutine: the engine pushes during Tick
// and the router drains right after, so the ring only has to hold a single tick
// A tick that emits more than the capacity overwrites its oldest events; each overwrite is counted
type Queue struct {
	ring    []GameEvent
	head    int // oldest pending slot
	n       int // pending count
	dropped *atomic.Int64
}

func NewQueue() *Queue {
	return NewQueueSize(parameter.EventQueueSize)
}

func NewQueueSize(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		ring:    make([]GameEvent, size),
		dropped: new(atomic.Int64),
	}
}

// CountDropsIn redirects the overwrite counter, usually to a status registry cell
func (q *Queue) CountDropsIn(c *atomic.Int64) {
	if c != nil {
		q.dropped = c
	}
}

func (q *Queue) Push(ev GameEvent) {
	size := len(q.ring)
	if q.n == size {
		// full: the write slot is the oldest event
		q.ring[q.head] = ev
		q.head = (q.head + 1) % size
		q.dropped.Add(1)
		return
	}
	q.ring[(q.head+q.n)%size] = ev
	q.n++
}

// Consume returns pending events oldest first and empties the queue; nil when empty
func (q *Queue) Consume() []GameEvent {
	if q.n == 0 {
		return nil
	}
	out := make([]GameEvent, q.n)
	first := copy(out, q.ring[q.head:min(q.head+q.n, len(q.ring))])
	copy(out[first:], q.ring[:q.n-first])

	// drop payload references
	clear(q.ring)
	q.head, q.n = 0, 0
	return out
}

func (q *Queue) Len() int {
	return q.n
}

// Dropped returns the number of events overwritten before dispatch
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}
