package network

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Creates a UDP socket bound to the given local address. The socket allows
// address and port reuse so several processes can share one listen port.
func ListenUDP(address string) (conn *net.UDPConn, err error) {
	// Using x/sys/unix package for more up-to-date syscall numbers
	cfg := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var err error
			c.Control(func(fd uintptr) {
				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
				if err != nil {
					return
				}
				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
			})
			return err
		},
	}

	pc, err := cfg.ListenPacket(context.Background(), "udp", address)
	if err != nil {
		err = fmt.Errorf("failed to listen on udp address %s: %v", address, err)
		return
	}
	conn = pc.(*net.UDPConn)
	return
}

// Resolves a host:port string into a UDP endpoint
func ResolveUDP(address string) (addr *net.UDPAddr, err error) {
	addr, err = net.ResolveUDPAddr("udp", address)
	if err != nil {
		err = fmt.Errorf("failed to resolve udp address %s: %v", address, err)
		return
	}
	return
}
