package forward

import (
	"context"
	"os"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/pkg/protocol"
)

// Writes one log message and its origin metadata to the configured beats
// server
func (mod *OutModule) Write(ctx context.Context, msg protocol.Message) (logsSent int, err error) {
	if mod == nil {
		return
	}

	fields := map[string]interface{}{
		// Minimum required fields
		"@timestamp": msg.Timestamp,
		"message":    msg.Text,

		// Severity and call site
		"log": map[string]interface{}{
			"level": msg.Level.String(),
			"origin": map[string]interface{}{
				"file": map[string]interface{}{
					"name": msg.File,
					"line": msg.Line,
				},
			},
		},

		// Remote end that produced the message
		"host": map[string]interface{}{
			"ip": msg.Sender,
		},

		// Meta fields identifying the forwarding daemon itself
		"agent": map[string]interface{}{
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    "filebeat",
			"pid":     os.Getpid(),
		},
	}
	events := []interface{}{fields}

	logsSent, err = mod.sink.Send(events)
	if err != nil {
		return
	}

	logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
		"Forwarded message from %s to beats endpoint\n", msg.Sender)
	return
}
