package receiver

import (
	"errors"
	"net"
	"time"

	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

var (
	// Returned by NextMessage when no message arrives within the timeout
	ErrTimeout = errors.New("timed out waiting for message")

	// Returned by NextMessage once the logger is closed and the queue has
	// drained
	ErrClosed = errors.New("log source gone")
)

// Pulls the next received message. A timeout of zero or below blocks until a
// message arrives or the logger closes. An expired timeout and a gone source
// are reported as distinct errors.
func (logger *Logger) NextMessage(timeout time.Duration) (msg protocol.Message, err error) {
	msg, err = logger.queue.PopWait(timeout)
	if err != nil {
		switch {
		case errors.Is(err, mpsc.ErrTimeout):
			err = ErrTimeout
		case errors.Is(err, mpsc.ErrClosed):
			err = ErrClosed
		}
	}
	return
}

// Filtering threshold fixed at construction
func (logger *Logger) Level() (level protocol.Level) {
	level = logger.level
	return
}

// Bound socket address, useful when listening on an ephemeral port
func (logger *Logger) LocalAddr() (addr net.Addr) {
	addr = logger.conn.LocalAddr()
	return
}

// Current queue counters
func (logger *Logger) QueueStats() (stats mpsc.Stats) {
	stats = logger.queue.Metrics.Snapshot()
	return
}

// Close shuts the socket and stops the polling goroutine. Messages already
// queued remain pullable, after which NextMessage reports the source gone.
// Safe to call more than once.
func (logger *Logger) Close() (err error) {
	logger.closeOnce.Do(func() {
		logger.closeErr = logger.conn.Close()

		// Unblock a forward push stuck on a full application queue
		logger.queue.Terminate()

		logger.wg.Wait()

		filterErr := logger.filter.Close()
		if logger.closeErr == nil {
			logger.closeErr = filterErr
		}
	})
	err = logger.closeErr
	return
}
