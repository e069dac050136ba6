package sender

import (
	"context"
	"runtime/debug"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/pkg/protocol"
)

// Single consumer loop for one sink. Pulls messages in FIFO order, filters
// by level, renders into the sink. Exits once the producer side is closed
// and the queue has drained.
func (logger *Logger) work(ctx context.Context, out sink) {
	defer logger.wg.Done()
	defer func() {
		closeErr := out.close()
		if closeErr != nil {
			logger.Metrics.SinkErrors.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"Failed to close %s sink: %v\n", logger.target, closeErr)
		}
		if logger.closeErr == nil {
			logger.closeErr = closeErr
		}
	}()
	defer logger.queue.Terminate()

	for {
		msg, ok := logger.queue.Pop()
		if !ok {
			return
		}

		if msg.Level < logger.level {
			logger.Metrics.Filtered.Add(1)
			continue
		}

		stop, writeErr := logger.render(ctx, out, msg)
		if writeErr != nil {
			logger.Metrics.SinkErrors.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Failed to render message to %s sink: %v\n", logger.target, writeErr)

			if stop {
				logger.closeErr = writeErr
				return
			}
			continue
		}

		logger.Metrics.Delivered.Add(1)
	}
}

// Renders one message with panic containment. Reports whether the failure is
// fatal for the worker: file writes are never retried so a failed log file
// stops the worker, console and network errors are recoverable.
func (logger *Logger) render(ctx context.Context, out sink, msg protocol.Message) (stop bool, err error) {
	// Record panics and continue working
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in %s sink worker: %v\n%s", logger.target, fatalError, stack)
		}
	}()

	err = out.write(msg)
	if err != nil && logger.target == TargetFile {
		stop = true
	}
	return
}
