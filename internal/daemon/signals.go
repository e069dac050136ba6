package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
)

// Handle exit requests and initiate graceful shutdown on signal reception
func watchSignals(ctx context.Context, halt func()) {
	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
			"Received signal: %v\n", sig)

		// Shutdown cancels the daemon context, which ends the run loop and
		// hands control back to the caller for the final log flush
		halt()
	case <-ctx.Done():
	}
}
