// Package receiver pulls log messages off the network. Messages must use the
// version 1 wire format produced by the sender's network sink.
package receiver

import (
	"context"
	"fmt"

	"wirelog/internal/global"
	"wirelog/internal/kfilter"
	"wirelog/internal/logctx"
	"wirelog/internal/network"
	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

// Creates a logger receiving messages of high enough level on the given
// listen address and starts its polling goroutine. A socket that cannot be
// bound fails construction without spawning anything.
func New(ctx context.Context, level protocol.Level, listenAddress string, opts Options) (logger *Logger, err error) {
	if !level.Valid() {
		err = fmt.Errorf("invalid level threshold: %s", level)
		return
	}

	conn, err := network.ListenUDP(listenAddress)
	if err != nil {
		return
	}

	pollCtx := logctx.AppendCtxTag(ctx, global.NSRecv)

	var filter *kfilter.Filter
	if opts.KernelFilter {
		// Receive keeps working without the kernel gate, decode rejects the
		// same datagrams in user space
		filter, err = kfilter.Attach(conn)
		if err != nil {
			logctx.LogEvent(pollCtx, global.VerbosityStandard, global.WarnLog,
				"Kernel filter unavailable: %v\n", err)
			err = nil
		}
	}

	capacity := opts.QueueCapacity
	if capacity == 0 {
		capacity = MessageBufferSize
	}

	logger = &Logger{
		level:   level,
		conn:    conn,
		queue:   mpsc.New(capacity),
		filter:  filter,
		Metrics: &MetricStorage{},
	}

	logger.wg.Add(1)
	go logger.poll(pollCtx)
	return
}
