package receiver

import (
	"net"
	"sync"
	"sync/atomic"

	"wirelog/internal/kfilter"
	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

// Maximum number of received log messages that can be queued for the
// application. The polling goroutine blocks once the queue is full.
const MessageBufferSize int = 1024

// Options carries optional receive settings
type Options struct {
	// Application queue capacity, MessageBufferSize when zero
	QueueCapacity int

	// Attach an in-kernel filter dropping datagrams of unknown wire versions
	// before they reach the socket buffer. Best effort, ignored where
	// unsupported.
	KernelFilter bool
}

// Logger binds a UDP socket, decodes inbound datagrams, re-filters them by
// level, and queues accepted messages for the application to pull. Safe for
// concurrent use, all consumers share the pointer.
type Logger struct {
	level  protocol.Level
	conn   *net.UDPConn
	queue  *mpsc.Queue
	filter *kfilter.Filter

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error

	Metrics *MetricStorage
}

// Polling-side counters. InvalidDatagrams records silently dropped
// undecodable traffic.
type MetricStorage struct {
	Received         atomic.Uint64
	Accepted         atomic.Uint64
	Filtered         atomic.Uint64
	InvalidDatagrams atomic.Uint64
}
