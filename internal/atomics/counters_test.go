package atomics

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubtract(t *testing.T) {
	tests := []struct {
		name        string
		initial     uint64
		subtract    uint64
		maxRetries  int
		wantSuccess bool
		wantFinal   uint64
	}{
		{
			name:        "already zero",
			initial:     0,
			subtract:    5,
			maxRetries:  1,
			wantSuccess: true,
			wantFinal:   0,
		},
		{
			name:        "simple subtraction",
			initial:     10,
			subtract:    3,
			maxRetries:  3,
			wantSuccess: true,
			wantFinal:   7,
		},
		{
			name:        "subtract more than available clamps to zero",
			initial:     5,
			subtract:    10,
			maxRetries:  3,
			wantSuccess: true,
			wantFinal:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a atomic.Uint64
			a.Store(tt.initial)

			ok := Subtract(&a, tt.subtract, tt.maxRetries)
			final := a.Load()

			if ok != tt.wantSuccess {
				t.Fatalf("expected success=%v, got %v", tt.wantSuccess, ok)
			}

			if final != tt.wantFinal {
				t.Fatalf("expected final=%d, got %d", tt.wantFinal, final)
			}
		})
	}
}

func TestRaiseMax(t *testing.T) {
	var a atomic.Uint64

	RaiseMax(&a, 7)
	if got := a.Load(); got != 7 {
		t.Fatalf("expected max raised to 7, got %d", got)
	}

	RaiseMax(&a, 3)
	if got := a.Load(); got != 7 {
		t.Fatalf("expected max to remain 7 after lower candidate, got %d", got)
	}

	// Contending writers must settle on the largest candidate
	var wg sync.WaitGroup
	for i := uint64(1); i <= 64; i++ {
		wg.Add(1)
		go func(candidate uint64) {
			defer wg.Done()
			RaiseMax(&a, candidate)
		}(i)
	}
	wg.Wait()

	if got := a.Load(); got != 64 {
		t.Fatalf("expected max of 64 after contention, got %d", got)
	}
}

func TestWaitUntilZero(t *testing.T) {
	tests := []struct {
		name          string
		initial       uint64
		mutate        func(a *atomic.Uint64)
		maxWaitTime   time.Duration
		expectReached bool
	}{
		{
			name:          "already zero",
			initial:       0,
			maxWaitTime:   200 * time.Millisecond,
			expectReached: true,
		},
		{
			name:    "eventually reaches zero",
			initial: 5,
			mutate: func(a *atomic.Uint64) {
				go func() {
					time.Sleep(100 * time.Millisecond)
					a.Store(0)
				}()
			},
			maxWaitTime:   2 * time.Second,
			expectReached: true,
		},
		{
			name:          "never reaches zero",
			initial:       3,
			maxWaitTime:   200 * time.Millisecond,
			expectReached: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a atomic.Uint64
			a.Store(tt.initial)

			if tt.mutate != nil {
				tt.mutate(&a)
			}

			reached, last := WaitUntilZero(&a, tt.maxWaitTime)

			if reached != tt.expectReached {
				t.Fatalf("expected reached=%v, got %v (last observed %d)", tt.expectReached, reached, last)
			}

			if tt.expectReached && last != 0 {
				t.Fatalf("expected last observed value 0, got %d", last)
			}
		})
	}
}
