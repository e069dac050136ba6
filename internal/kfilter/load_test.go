package kfilter

import (
	"os"
	"runtime"
	"testing"

	"wirelog/internal/network"

	"github.com/cilium/ebpf/asm"
)

func TestVersionGateInstructions(t *testing.T) {
	instructions := versionGateInstructions()

	if len(instructions) == 0 {
		t.Fatalf("program has no instructions")
	}

	foundAccept := false
	for _, ins := range instructions {
		if ins.Symbol() == "accept" {
			foundAccept = true
		}
	}
	if !foundAccept {
		t.Fatalf("expected accept branch target not found")
	}

	// Both paths must end in a return for the verifier
	last := instructions[len(instructions)-1]
	if last.OpCode.JumpOp() != asm.Exit {
		t.Fatalf("expected final instruction to exit, got %v", last.OpCode)
	}
}

func TestAttach(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("socket filters require linux")
	}
	if os.Geteuid() != 0 {
		t.Skip("loading filter programs requires root")
	}

	conn, err := network.ListenUDP("127.0.0.1:0")
	if err != nil {
		t.Fatalf("expected no error binding udp socket, but got '%v'", err)
	}
	defer conn.Close()

	filter, err := Attach(conn)
	if err != nil {
		t.Fatalf("expected no error attaching filter, but got '%v'", err)
	}

	err = filter.Close()
	if err != nil {
		t.Fatalf("expected no error closing filter, but got '%v'", err)
	}
}

func TestFilterCloseNil(t *testing.T) {
	var filter *Filter

	// Close on an absent filter must be a safe no-op
	err := filter.Close()
	if err != nil {
		t.Fatalf("expected no error closing nil filter, but got '%v'", err)
	}
}
