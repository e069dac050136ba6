package receiver

import (
	"context"
	"errors"
	"net"
	"runtime/debug"

	"wirelog/internal/global"
	"wirelog/internal/logctx"
	"wirelog/pkg/protocol"
)

// Largest possible UDP payload
const readBufferSize int = 65535

// Reads raw datagrams off the socket, decodes and level-filters them, and
// forwards accepted messages into the application queue. Malformed or foreign
// traffic is expected background noise: dropped without surfacing an error,
// visible only through the drop counter. Exits once the socket closes.
func (logger *Logger) poll(ctx context.Context) {
	defer logger.wg.Done()
	defer logger.queue.Close()

	buf := make([]byte, readBufferSize)
	for {
		n, peer, err := logger.conn.ReadFromUDP(buf)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
					"Receive socket failed: %v\n", err)
			}
			return
		}
		logger.Metrics.Received.Add(1)

		stop := logger.handle(ctx, buf[:n], peer)
		if stop {
			return
		}
	}
}

// Handles one datagram with panic containment. Reports whether the
// application side is gone and polling should stop.
func (logger *Logger) handle(ctx context.Context, datagram []byte, peer *net.UDPAddr) (stop bool) {
	// Record panics and continue polling
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in receive poll worker: %v\n%s", fatalError, stack)
		}
	}()

	msg, err := protocol.DecodeMessageV1(datagram)
	if err != nil {
		logger.Metrics.InvalidDatagrams.Add(1)
		logctx.LogEvent(ctx, global.VerbosityDebug, global.WarnLog,
			"Dropped undecodable datagram from %s: %v\n", peer, err)
		return
	}

	if msg.Level < logger.level {
		logger.Metrics.Filtered.Add(1)
		return
	}

	msg.Sender = peer.String()

	err = logger.queue.Push(msg)
	if err != nil {
		// Application side gone
		stop = true
		return
	}
	logger.Metrics.Accepted.Add(1)
	return
}
