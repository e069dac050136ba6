// Package sender produces log messages and delivers them through a bounded
// dispatch queue to a dedicated per-logger sink worker. Three sinks are
// supported: colored console lines, a plain text log file, and wire encoded
// datagrams to a remote receiver.
package sender

import (
	"context"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/internal/queue/mpsc"
	"wirelog/pkg/protocol"
)

// Creates a logger delivering into the given target and starts its sink
// worker. Messages below the level threshold are discarded by the worker.
// Construction fails without spawning anything when the sink resource
// cannot be acquired.
func New(ctx context.Context, level protocol.Level, target Target, opts Options) (logger *Logger, err error) {
	metrics := &MetricStorage{}

	out, err := newSink(level, target, opts, metrics)
	if err != nil {
		return
	}

	logger = &Logger{
		level:   level,
		target:  target,
		queue:   mpsc.New(MessageBufferSize),
		Metrics: metrics,
	}

	workerCtx := logctx.AppendCtxTag(ctx, global.NSWorker)

	logger.wg.Add(1)
	go logger.work(workerCtx, out)
	return
}
