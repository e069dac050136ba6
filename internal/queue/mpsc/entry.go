package mpsc

import (
	"errors"
	"time"

	"wirelog/internal/atomics"
	"wirelog/pkg/protocol"
)

var (
	// Returned by Push once either queue side is gone, and by PopWait once
	// the queue is closed and fully drained
	ErrClosed = errors.New("queue closed: delivery unavailable")

	// Returned by PopWait when no message arrives within the deadline
	ErrTimeout = errors.New("timed out waiting for message")
)

const depthRetries int = 5

// Queue constructor. Capacity below 1 is raised to 1.
func New(capacity int) (queue *Queue) {
	if capacity < 1 {
		capacity = 1
	}

	queue = &Queue{
		items:   make(chan protocol.Message, capacity),
		quit:    make(chan struct{}),
		dead:    make(chan struct{}),
		Metrics: &MetricStorage{},
	}
	return
}

// Enqueues one message in FIFO order. Blocks the caller while the queue is
// full - backpressure is the only flow control. Fails once the producer side
// was closed or the consumer terminated.
func (queue *Queue) Push(msg protocol.Message) (err error) {
	// Fast path rejection when a side is already gone
	select {
	case <-queue.quit:
		queue.Metrics.FailedPushes.Add(1)
		err = ErrClosed
		return
	case <-queue.dead:
		queue.Metrics.FailedPushes.Add(1)
		err = ErrClosed
		return
	default:
	}

	select {
	case queue.items <- msg:
		queue.Metrics.Enqueued.Add(1)
		depth := queue.Metrics.Depth.Add(1)
		atomics.RaiseMax(&queue.Metrics.HighWater, depth)
	case <-queue.quit:
		queue.Metrics.FailedPushes.Add(1)
		err = ErrClosed
	case <-queue.dead:
		queue.Metrics.FailedPushes.Add(1)
		err = ErrClosed
	}
	return
}

// Dequeues the next message, blocking until one arrives. After Close, any
// still-buffered messages drain first, then ok is false.
func (queue *Queue) Pop() (msg protocol.Message, ok bool) {
	select {
	case msg = <-queue.items:
		ok = true
	case <-queue.quit:
		// Producer side gone, hand out whatever is still buffered
		select {
		case msg = <-queue.items:
			ok = true
		default:
			return
		}
	}

	queue.Metrics.Dequeued.Add(1)
	atomics.Subtract(&queue.Metrics.Depth, 1, depthRetries)
	return
}

// Dequeues the next message with an optional deadline. A timeout of zero or
// below blocks indefinitely. Distinguishes an expired deadline (ErrTimeout)
// from a closed and drained queue (ErrClosed).
func (queue *Queue) PopWait(timeout time.Duration) (msg protocol.Message, err error) {
	if timeout <= 0 {
		var ok bool
		msg, ok = queue.Pop()
		if !ok {
			err = ErrClosed
		}
		return
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case msg = <-queue.items:
	case <-timer.C:
		err = ErrTimeout
		return
	case <-queue.quit:
		// Producer side gone, hand out whatever is still buffered
		select {
		case msg = <-queue.items:
		default:
			err = ErrClosed
			return
		}
	}

	queue.Metrics.Dequeued.Add(1)
	atomics.Subtract(&queue.Metrics.Depth, 1, depthRetries)
	return
}

// Close shuts the producer side. Subsequent pushes fail, buffered messages
// remain consumable. Safe to call more than once.
func (queue *Queue) Close() {
	queue.quitOnce.Do(func() {
		close(queue.quit)
	})
}

// Terminate marks the consumer gone. Blocked and future pushes fail
// immediately. Safe to call more than once.
func (queue *Queue) Terminate() {
	queue.deadOnce.Do(func() {
		close(queue.dead)
	})
}

// Blocks until the queue empties or the timeout passes, reporting the number
// of messages still buffered when it gave up
func (queue *Queue) WaitEmpty(timeout time.Duration) (emptied bool, remaining uint64) {
	emptied, remaining = atomics.WaitUntilZero(&queue.Metrics.Depth, timeout)
	return
}

// Messages currently buffered
func (queue *Queue) Depth() (depth int) {
	depth = len(queue.items)
	return
}

// Fixed slot count
func (queue *Queue) Capacity() (capacity int) {
	capacity = cap(queue.items)
	return
}
