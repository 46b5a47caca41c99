package command

import "context"

// DefaultQueueSize is the capacity used when none is configured.
const DefaultQueueSize = 100

// Queue is a bounded FIFO of commands with a single consumer. Producers
// block once it is full.
type Queue struct {
	ch chan Command
}

// NewQueue creates a queue holding at most capacity pending commands.
// A non-positive capacity falls back to DefaultQueueSize.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Queue{ch: make(chan Command, capacity)}
}

// Send enqueues c, blocking while the queue is full. It returns ctx.Err()
// if ctx is done first. Invalid commands are dropped.
func (q *Queue) Send(ctx context.Context, c Command) error {
	if !c.Valid() {
		return nil
	}
	select {
	case q.ch <- c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive returns the channel the consumer reads from.
func (q *Queue) Receive() <-chan Command {
	return q.ch
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}
