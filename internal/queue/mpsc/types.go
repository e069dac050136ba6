// Bounded multi-producer single-consumer FIFO connecting message producers
// to one dedicated sink worker
package mpsc

import (
	"sync"
	"sync/atomic"

	"wirelog/pkg/protocol"
)

type Queue struct {
	items chan protocol.Message
	quit  chan struct{} // closed when the producer side shuts down
	dead  chan struct{} // closed when the consumer terminates

	quitOnce sync.Once
	deadOnce sync.Once

	Metrics *MetricStorage
}

type MetricStorage struct {
	Enqueued     atomic.Uint64 // messages accepted into the queue
	Dequeued     atomic.Uint64 // messages handed to the consumer
	FailedPushes atomic.Uint64 // pushes refused because a side was gone
	Depth        atomic.Uint64 // messages currently buffered
	HighWater    atomic.Uint64 // largest observed depth
}

// Point-in-time copy of the queue counters
type Stats struct {
	Enqueued     uint64
	Dequeued     uint64
	FailedPushes uint64
	Depth        uint64
	HighWater    uint64
}
