package sender

import (
	"io"
	"sync"
	"sync/atomic"

	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

// Target selects the delivery backend a logger renders into
type Target int

const (
	// Color formatted lines on standard output
	TargetConsole Target = iota
	// Plain formatted lines in a single log file
	TargetFile
	// Wire encoded datagrams to a remote receiver
	TargetNetwork
)

// Human readable target name
func (target Target) String() (name string) {
	switch target {
	case TargetConsole:
		name = "console"
	case TargetFile:
		name = "file"
	case TargetNetwork:
		name = "network"
	default:
		name = "unknown"
	}
	return
}

// Options carries the per-target settings used at construction. Fields not
// relevant to the chosen target are ignored.
type Options struct {
	// File target: path created or truncated at construction
	FilePath string

	// Network target: local bind address, loopback any-port when empty
	LocalAddress string

	// Network target: destination address, resolved at construction
	RemoteAddress string

	// Console target: alternate destination writer, stdout when nil
	ConsoleWriter io.Writer

	// Console target: emit color escapes even when the writer is not a
	// terminal
	ForceColor bool
}

// Logger is the producer handle of one dispatch queue with a dedicated sink
// worker on the consuming end. Safe for concurrent use, all producers share
// the pointer.
type Logger struct {
	level  protocol.Level
	target Target
	queue  *mpsc.Queue

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error

	Metrics *MetricStorage
}

// Worker-side delivery counters
type MetricStorage struct {
	Delivered  atomic.Uint64
	Filtered   atomic.Uint64
	SinkErrors atomic.Uint64
	BytesSent  atomic.Uint64
}
