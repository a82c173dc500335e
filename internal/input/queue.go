package input

import (
	"sync"
	"sync/atomic"
)

const DefaultQueueSize = 256

// Queue is the buffered event channel between a host's reader goroutines
// and the scheduler. Push never blocks: when the scheduler falls behind,
// events are dropped and counted.
type Queue struct {
	mu      sync.RWMutex
	ch      chan Event
	closed  bool
	dropped atomic.Uint64
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev. It reports false if the queue is full or closed.
func (q *Queue) Push(ev Event) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	select {
	case q.ch <- ev:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

func (q *Queue) Events() <-chan Event { return q.ch }

// Dropped is the number of events lost to a full queue.
func (q *Queue) Dropped() uint64 { return q.dropped.Load() }

// Close closes the channel. Later pushes are discarded; Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
