package daemon

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"wirelog/internal/forward"
	"wirelog/internal/global"
	"wirelog/pkg/protocol"
	"wirelog/pkg/receiver"
	"wirelog/pkg/sender"
)

// SendDaemon pumps lines from standard input into one configured sink
type SendDaemon struct {
	cfg    global.SendConfig
	ctx    context.Context
	cancel context.CancelFunc

	level  protocol.Level
	logger *sender.Logger

	wg           sync.WaitGroup
	shutdownOnce sync.Once

	// Raised when a fatal message was accepted, the process should halt
	TerminateRequested atomic.Bool
}

// ReceiveDaemon pulls messages off the network and re-logs them into the
// configured outputs
type ReceiveDaemon struct {
	cfg    global.RecvConfig
	ctx    context.Context
	cancel context.CancelFunc

	source      *receiver.Logger
	console     *sender.Logger
	file        *sender.Logger
	beats       *forward.OutModule
	pollTimeout time.Duration

	wg           sync.WaitGroup
	shutdownOnce sync.Once
}
