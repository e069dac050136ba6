package sender

import (
	"errors"
	"time"

	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

// Returned by Send once the sink worker is gone
var ErrClosed = errors.New("logger closed: delivery unavailable")

// Enqueues one message for delivery. Blocks while the dispatch queue is full,
// backpressure is the only flow control. The terminate flag is raised after a
// fatal severity message is accepted: the caller decides whether to halt the
// process, the library never exits on its own.
func (logger *Logger) Send(msg protocol.Message) (terminate bool, err error) {
	err = logger.queue.Push(msg)
	if err != nil {
		err = ErrClosed
		return
	}

	terminate = msg.Level == protocol.LevelFatal
	return
}

// Filtering threshold fixed at construction
func (logger *Logger) Level() (level protocol.Level) {
	level = logger.level
	return
}

// Delivery backend fixed at construction
func (logger *Logger) Target() (target Target) {
	target = logger.target
	return
}

// Current queue counters
func (logger *Logger) QueueStats() (stats mpsc.Stats) {
	stats = logger.queue.Metrics.Snapshot()
	return
}

// Blocks until queued messages have been handed to the sink or the timeout
// passes, reporting how many were still waiting when it gave up
func (logger *Logger) WaitDrained(timeout time.Duration) (drained bool, remaining uint64) {
	drained, remaining = logger.queue.WaitEmpty(timeout)
	return
}

// Close stops accepting new messages, waits for the worker to drain what is
// already queued, and releases the sink resource. Safe to call more than
// once. Returns the error that stopped the worker early, if any.
func (logger *Logger) Close() (err error) {
	logger.closeOnce.Do(func() {
		logger.queue.Close()
		logger.wg.Wait()
	})
	err = logger.closeErr
	return
}
