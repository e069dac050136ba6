package protocol

import (
	"errors"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelTrace, LevelInformation, LevelWarning, LevelError, LevelFatal}

	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Fatalf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevelFromCode(t *testing.T) {
	tests := []struct {
		name      string
		code      uint8
		expect    Level
		expectErr bool
	}{
		{name: "trace", code: 0, expect: LevelTrace},
		{name: "information", code: 1, expect: LevelInformation},
		{name: "warning", code: 2, expect: LevelWarning},
		{name: "error", code: 3, expect: LevelError},
		{name: "fatal", code: 4, expect: LevelFatal},
		{name: "first invalid code", code: 5, expectErr: true},
		{name: "distant invalid code", code: 200, expectErr: true},
		{name: "max invalid code", code: 255, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := LevelFromCode(tt.code)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for code %d, but got none", tt.code)
				}
				if !errors.Is(err, ErrUnknownLevel) {
					t.Fatalf("expected ErrUnknownLevel, but got '%v'", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error for code %d, but got '%v'", tt.code, err)
			}
			if level != tt.expect {
				t.Fatalf("expected level %v, got %v", tt.expect, level)
			}
		})
	}
}

func TestLevelFromName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expect    Level
		expectErr bool
	}{
		{name: "lowercase", input: "warning", expect: LevelWarning},
		{name: "mixed case", input: "Fatal", expect: LevelFatal},
		{name: "uppercase", input: "TRACE", expect: LevelTrace},
		{name: "information", input: "information", expect: LevelInformation},
		{name: "error", input: "error", expect: LevelError},
		{name: "unknown keyword", input: "critical", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := LevelFromName(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for keyword %q, but got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error for keyword %q, but got '%v'", tt.input, err)
			}
			if level != tt.expect {
				t.Fatalf("expected level %v, got %v", tt.expect, level)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarning.String(); got != "warning" {
		t.Fatalf("expected 'warning', got %q", got)
	}
	if got := Level(9).String(); got != "unknown(9)" {
		t.Fatalf("expected 'unknown(9)', got %q", got)
	}
}

func TestLevelValid(t *testing.T) {
	for code := uint8(0); code <= 4; code++ {
		if !Level(code).Valid() {
			t.Fatalf("expected level code %d to be valid", code)
		}
	}
	if Level(5).Valid() {
		t.Fatal("expected level code 5 to be invalid")
	}
}
