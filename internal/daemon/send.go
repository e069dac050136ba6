// Daemons for continuous production and delivery of log messages
package daemon

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/pkg/protocol"
	"wirelog/pkg/sender"
)

// Create new sending daemon instance
func NewSendDaemon(cfg global.SendConfig) (new *SendDaemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &SendDaemon{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	return
}

// Starts input pump and sink worker in background - gracefully shuts down if startup error is encountered
func (daemon *SendDaemon) Start(globalCtx context.Context) (err error) {
	// New context for the daemon
	daemon.ctx, daemon.cancel = context.WithCancel(context.Background())
	daemon.ctx = context.WithValue(daemon.ctx, global.LoggerKey, logctx.GetLogger(globalCtx))

	// Top level tags for daemon logs
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSDaemon)
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSSend)
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	daemon.level, err = protocol.LevelFromName(daemon.cfg.Level)
	if err != nil {
		err = fmt.Errorf("failed to parse severity level: %v", err)
		return
	}

	target, err := targetFromName(daemon.cfg.Target)
	if err != nil {
		return
	}

	daemon.logger, err = sender.New(daemon.ctx, daemon.level, target, sender.Options{
		FilePath:      daemon.cfg.File.Path,
		LocalAddress:  daemon.cfg.Network.LocalAddress,
		RemoteAddress: daemon.cfg.Network.RemoteAddress,
	})
	if err != nil {
		err = fmt.Errorf("failed to create %s logger: %v", target, err)
		return
	}

	// Start handling exit signals before the pump starts ingesting messages
	go watchSignals(daemon.ctx, daemon.Shutdown)

	// Capture so return doesn't strip ns tags
	pumpCtx := daemon.ctx
	daemon.wg.Add(1)
	go daemon.pump(pumpCtx)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Startup complete.\n")
	return
}

// Reads standard input line by line and hands each line to the sink worker.
// Ends the run loop when input is exhausted, delivery stops, or a fatal
// message requests termination.
func (daemon *SendDaemon) pump(ctx context.Context) {
	defer daemon.wg.Done()
	defer daemon.cancel()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), protocol.MaxTextLen)

	var lineNo uint32
	for scanner.Scan() {
		lineNo++

		msg := protocol.Message{
			Timestamp: time.Now(),
			Level:     daemon.level,
			Text:      scanner.Text(),
			File:      "stdin",
			Line:      lineNo,
		}

		terminate, err := daemon.logger.Send(msg)
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"Message delivery stopped: %v\n", err)
			return
		}
		if terminate {
			daemon.TerminateRequested.Store(true)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
				"Fatal message accepted: terminating input\n")
			return
		}

		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"Accepted input line %d\n", lineNo)
	}

	err := scanner.Err()
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"Input read failed: %v\n", err)
	}
}

// Blocking daemon waiter
func (daemon *SendDaemon) Run() {
	<-daemon.ctx.Done()
}

// Gracefully drain the dispatch queue and stop the sink worker
func (daemon *SendDaemon) Shutdown() {
	daemon.shutdownOnce.Do(func() {
		daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSDaemon)
		daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSSend)
		defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()
		defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown started...\n")

		if daemon.logger != nil {
			drained, remaining := daemon.logger.WaitDrained(global.SendShutdownTimeout)
			if !drained {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"dispatch queue did not empty in time: dropped %d messages\n", remaining)
			}

			err := daemon.logger.Close()
			if err != nil {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"Sink closed uncleanly: %v\n", err)
			}
		}

		// Stop the run loop after the queue is drained and the sink is stopped
		daemon.cancel()

		// Wait for the pump to finish (with timeout)
		done := make(chan struct{})
		go func() {
			daemon.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
				"Daemon shutdown completed successfully\n")
		case <-time.After(global.SendShutdownTimeout):
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
				"Timeout: send daemon did not shutdown within %v seconds",
				global.SendShutdownTimeout.Seconds())
			return
		}
	})
}
