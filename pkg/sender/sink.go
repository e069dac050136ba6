package sender

import (
	"fmt"
	"os"

	"wirelog/internal/global"
	"wirelog/pkg/protocol"
)

// One delivery backend. Owned exclusively by the worker goroutine that
// renders into it, no locking required.
type sink interface {
	write(msg protocol.Message) error
	close() error
}

// Builds the backend for the requested target. Resource acquisition failures
// surface here so no worker is ever started against a broken sink.
func newSink(level protocol.Level, target Target, opts Options, metrics *MetricStorage) (out sink, err error) {
	if !level.Valid() {
		err = fmt.Errorf("invalid level threshold: %s", level)
		return
	}

	switch target {
	case TargetConsole:
		writer := opts.ConsoleWriter
		if writer == nil {
			writer = os.Stdout
		}
		out = newConsoleSink(writer, opts.ForceColor)
	case TargetFile:
		path := opts.FilePath
		if path == "" {
			path = global.DefaultLogFilePath
		}
		out, err = newFileSink(path)
	case TargetNetwork:
		localAddress := opts.LocalAddress
		if localAddress == "" {
			localAddress = global.DefaultLocalAddress
		}
		out, err = newNetworkSink(localAddress, opts.RemoteAddress, metrics)
	default:
		err = fmt.Errorf("unknown sink target: %d", target)
	}
	return
}
