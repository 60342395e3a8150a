package event

import (
	"sync/atomic"

	"github.com/lixenwraith/coilhop/parameter"
)

const queueMask = parameter.EventQueueSize - 1

// Queue is a lock-free MPSC ring buffer for simulation events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (host loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event; O(1) amortized and safe for concurrent producers
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & queueMask
		q.events[idx] = ev
		q.published[idx].Store(true) // MUST be after write

		// Drop oldest when lapping the reader
		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances head
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & queueMask
			if !q.published[idx].Load() {
				break // Writer incomplete
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if d := tail - head; d < parameter.EventQueueSize {
		return int(d)
	}
	return parameter.EventQueueSize
}
