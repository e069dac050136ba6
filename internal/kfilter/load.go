// Package kfilter attaches an in-kernel gate to receive sockets so datagrams
// that cannot possibly decode never reach user space.
package kfilter

import (
	"fmt"
	"net"
	"runtime"

	"wirelog/pkg/protocol"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/asm"
	"golang.org/x/sys/unix"
)

// Handle to a loaded and attached socket filter
type Filter struct {
	program *ebpf.Program
}

// Builds the filter program and attaches it to the given UDP socket. Datagrams
// whose first payload byte is not a supported wire version are dropped by the
// kernel before they hit the socket buffer. No-op on non-linux systems.
func Attach(conn *net.UDPConn) (filter *Filter, err error) {
	if runtime.GOOS != "linux" {
		return
	}

	err = unix.Setrlimit(unix.RLIMIT_MEMLOCK, &unix.Rlimit{
		Cur: unix.RLIM_INFINITY,
		Max: unix.RLIM_INFINITY,
	})
	if err != nil {
		err = fmt.Errorf("set resource limit: %v", err)
		return
	}

	program, err := ebpf.NewProgram(&ebpf.ProgramSpec{
		Name:         programName,
		Type:         ebpf.SocketFilter,
		Instructions: versionGateInstructions(),
		License:      "GPL",
	})
	if err != nil {
		err = fmt.Errorf("load filter program: %v", err)
		return
	}

	err = attachToSocket(conn, program)
	if err != nil {
		program.Close()
		err = fmt.Errorf("attach filter program: %v", err)
		return
	}

	filter = &Filter{program: program}
	return
}

// Assembles the version gate. Absolute loads terminate the program with a
// drop when the datagram is shorter than the inspected offset, so runt
// packets never pass.
func versionGateInstructions() (instructions asm.Instructions) {
	instructions = asm.Instructions{
		// Absolute loads read relative to the socket buffer in R6
		asm.Mov.Reg(asm.R6, asm.R1),
		asm.LoadAbs(versionByteOffset, asm.Byte),
		asm.JEq.Imm(asm.R0, int32(protocol.WireVersion1), "accept"),
		asm.Mov.Imm(asm.R0, 0),
		asm.Return(),
		asm.Mov.Imm(asm.R0, acceptFullPacket).WithSymbol("accept"),
		asm.Return(),
	}
	return
}

// Installs the program on the socket file descriptor
func attachToSocket(conn *net.UDPConn, program *ebpf.Program) (err error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		err = fmt.Errorf("access raw socket: %v", err)
		return
	}

	var sockoptErr error
	err = rawConn.Control(func(fd uintptr) {
		sockoptErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_ATTACH_BPF, program.FD())
	})
	if err != nil {
		return
	}
	err = sockoptErr
	return
}

// Releases the kernel program. The socket detaches the filter itself when it
// closes.
func (filter *Filter) Close() (err error) {
	if filter == nil || filter.program == nil {
		return
	}

	err = filter.program.Close()
	return
}
