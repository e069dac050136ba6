package sender

import (
	"fmt"
	"net"

	"wirelog/internal/network"
	"wirelog/pkg/protocol"
)

type networkSink struct {
	conn    *net.UDPConn
	remote  *net.UDPAddr
	metrics *MetricStorage
}

// Binds the local endpoint and resolves the destination. Both failures are
// construction errors, reported to the caller before any worker starts.
func newNetworkSink(localAddress string, remoteAddress string, metrics *MetricStorage) (out *networkSink, err error) {
	remote, err := network.ResolveUDP(remoteAddress)
	if err != nil {
		return
	}

	conn, err := network.ListenUDP(localAddress)
	if err != nil {
		return
	}

	out = &networkSink{
		conn:    conn,
		remote:  remote,
		metrics: metrics,
	}
	return
}

// Encodes one message and sends it as a single datagram. Delivery is best
// effort, the datagram may be dropped or reordered in transit.
func (out *networkSink) write(msg protocol.Message) (err error) {
	datagram, err := protocol.EncodeMessageV1(msg)
	if err != nil {
		err = fmt.Errorf("failed to encode message: %v", err)
		return
	}

	sent, err := out.conn.WriteToUDP(datagram, out.remote)
	if err != nil {
		err = fmt.Errorf("failed to send datagram to %s: %v", out.remote, err)
		return
	}

	out.metrics.BytesSent.Add(uint64(sent))
	return
}

func (out *networkSink) close() (err error) {
	err = out.conn.Close()
	return
}
