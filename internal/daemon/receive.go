package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"wirelog/internal/forward"
	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/pkg/protocol"
	"wirelog/pkg/receiver"
	"wirelog/pkg/sender"
)

// Create new receiving daemon instance
func NewReceiveDaemon(cfg global.RecvConfig) (new *ReceiveDaemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &ReceiveDaemon{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	return
}

// Starts the log source and relay pump in background - gracefully shuts down if startup error is encountered
func (daemon *ReceiveDaemon) Start(globalCtx context.Context) (err error) {
	// New context for the daemon
	daemon.ctx, daemon.cancel = context.WithCancel(context.Background())
	daemon.ctx = context.WithValue(daemon.ctx, global.LoggerKey, logctx.GetLogger(globalCtx))

	// Top level tags for daemon logs
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSDaemon)
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSRecv)
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()
	defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	level, err := protocol.LevelFromName(daemon.cfg.Level)
	if err != nil {
		err = fmt.Errorf("failed to parse severity level: %v", err)
		return
	}

	daemon.pollTimeout, err = time.ParseDuration(daemon.cfg.PollTimeout)
	if err != nil {
		err = fmt.Errorf("failed to parse poll timeout: %v", err)
		return
	}

	daemon.source, err = receiver.New(daemon.ctx, level, daemon.cfg.ListenAddress, receiver.Options{
		QueueCapacity: daemon.cfg.QueueCapacity,
		KernelFilter:  daemon.cfg.KernelFilter,
	})
	if err != nil {
		err = fmt.Errorf("failed to start log source: %v", err)
		return
	}
	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Listening on %s\n", daemon.source.LocalAddr())

	// Relay outputs re-log everything the source already accepted, so their
	// own thresholds stay wide open
	if daemon.cfg.Outputs.Stdout {
		daemon.console, err = sender.New(daemon.ctx, protocol.LevelTrace, sender.TargetConsole, sender.Options{})
		if err != nil {
			err = fmt.Errorf("failed to create console output: %v", err)
			daemon.Shutdown()
			return
		}
	}
	if daemon.cfg.Outputs.FilePath != "" {
		daemon.file, err = sender.New(daemon.ctx, protocol.LevelTrace, sender.TargetFile, sender.Options{
			FilePath: daemon.cfg.Outputs.FilePath,
		})
		if err != nil {
			err = fmt.Errorf("failed to create file output: %v", err)
			daemon.Shutdown()
			return
		}
	}
	daemon.beats, err = forward.NewOutput(daemon.cfg.Outputs.BeatsEndpoint)
	if err != nil {
		daemon.Shutdown()
		return
	}

	// Start handling exit signals before the pump starts relaying messages
	go watchSignals(daemon.ctx, daemon.Shutdown)

	// Capture so return doesn't strip ns tags
	pumpCtx := daemon.ctx
	daemon.wg.Add(1)
	go daemon.pump(pumpCtx)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Startup complete.\n")
	return
}

// Polls the log source and re-logs every accepted message into the configured
// outputs. Ends the run loop when the source closes.
func (daemon *ReceiveDaemon) pump(ctx context.Context) {
	defer daemon.wg.Done()
	defer daemon.cancel()

	for {
		msg, err := daemon.source.NextMessage(daemon.pollTimeout)
		if errors.Is(err, receiver.ErrTimeout) {
			// Idle poll, only worth a ctx check
			select {
			case <-ctx.Done():
				return
			default:
				continue
			}
		}
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
				"Log source closed, stopping relay\n")
			return
		}

		if daemon.console != nil {
			_, err = daemon.console.Send(msg)
			if err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
					"Console relay failed: %v\n", err)
			}
		}
		if daemon.file != nil {
			_, err = daemon.file.Send(msg)
			if err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
					"File relay failed: %v\n", err)
			}
		}
		_, err = daemon.beats.Write(ctx, msg)
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"Beats forward failed: %v\n", err)
		}
	}
}

// Blocking daemon waiter
func (daemon *ReceiveDaemon) Run() {
	<-daemon.ctx.Done()
}

// Bound listen address of the running log source
func (daemon *ReceiveDaemon) ListenAddr() (addr net.Addr) {
	if daemon.source != nil {
		addr = daemon.source.LocalAddr()
	}
	return
}

// Gracefully stop the log source, drain the relay, and close all outputs
func (daemon *ReceiveDaemon) Shutdown() {
	daemon.shutdownOnce.Do(func() {
		daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSDaemon)
		daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSRecv)
		defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()
		defer func() { daemon.ctx = logctx.RemoveLastCtxTag(daemon.ctx) }()

		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown started...\n")

		// Stop the source first so the pump drains whatever was already
		// accepted before it exits
		if daemon.source != nil {
			err := daemon.source.Close()
			if err != nil {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"Log source closed uncleanly: %v\n", err)
			}
		}

		// Stop the run loop after the source is stopped
		daemon.cancel()

		// Wait for the pump to finish relaying (with timeout)
		done := make(chan struct{})
		go func() {
			daemon.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(global.ReceiveShutdownTimeout):
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
				"Timeout: receive daemon did not shutdown within %v seconds",
				global.ReceiveShutdownTimeout.Seconds())
			return
		}

		// Outputs close after the pump so every relayed message reaches them
		if daemon.console != nil {
			err := daemon.console.Close()
			if err != nil {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"Console output closed uncleanly: %v\n", err)
			}
		}
		if daemon.file != nil {
			err := daemon.file.Close()
			if err != nil {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"File output closed uncleanly: %v\n", err)
			}
		}
		err := daemon.beats.Shutdown()
		if err != nil {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"beats output did not shutdown gracefully: %v\n", err)
		}

		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown completed successfully\n")
	})
}
