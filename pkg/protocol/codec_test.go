package protocol

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{
			name: "basic warning",
			msg: Message{
				Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
				Level:     LevelWarning,
				Text:      "disk nearly full!",
				File:      "disk.rs",
				Line:      42,
			},
		},
		{
			name: "trace with nanoseconds",
			msg: Message{
				Timestamp: time.Date(2026, 8, 21, 23, 59, 58, 987654321, time.Local),
				Level:     LevelTrace,
				Text:      "entering poll loop",
				File:      "poll.go",
				Line:      7,
			},
		},
		{
			name: "empty text",
			msg: Message{
				Timestamp: time.Date(2025, 12, 31, 12, 30, 15, 1, time.Local),
				Level:     LevelError,
				Text:      "",
				File:      "main.go",
				Line:      100,
			},
		},
		{
			name: "empty file name",
			msg: Message{
				Timestamp: time.Date(2024, 6, 15, 6, 1, 2, 500, time.Local),
				Level:     LevelInformation,
				Text:      "no origin recorded",
				File:      "",
				Line:      0,
			},
		},
		{
			name: "fatal with max line",
			msg: Message{
				Timestamp: time.Date(2024, 2, 29, 1, 2, 3, 4, time.Local),
				Level:     LevelFatal,
				Text:      "unrecoverable state",
				File:      "state.go",
				Line:      4294967295,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datagram, err := EncodeMessageV1(tt.msg)
			if err != nil {
				t.Fatalf("expected no error during encode, but got '%v'", err)
			}

			wantLen := HeaderLenV1 + len(tt.msg.File) + 2 + len(tt.msg.Text)
			if len(datagram) != wantLen {
				t.Fatalf("expected datagram length %d, got %d", wantLen, len(datagram))
			}

			decoded, err := DecodeMessageV1(datagram)
			if err != nil {
				t.Fatalf("expected no error during decode, but got '%v'", err)
			}

			if decoded.Level != tt.msg.Level {
				t.Errorf("level mismatch: got %v want %v", decoded.Level, tt.msg.Level)
			}
			if decoded.Text != tt.msg.Text {
				t.Errorf("text mismatch: got %q want %q", decoded.Text, tt.msg.Text)
			}
			if decoded.File != tt.msg.File {
				t.Errorf("file mismatch: got %q want %q", decoded.File, tt.msg.File)
			}
			if decoded.Line != tt.msg.Line {
				t.Errorf("line mismatch: got %d want %d", decoded.Line, tt.msg.Line)
			}
			if !decoded.Timestamp.Equal(tt.msg.Timestamp) {
				t.Errorf("timestamp mismatch: got %v want %v", decoded.Timestamp, tt.msg.Timestamp)
			}
			if !decoded.Value.Absent() {
				t.Errorf("expected absent value on decoded message, got %v", decoded.Value)
			}
		})
	}
}

func TestRoundTripWireSize(t *testing.T) {
	msg := Message{
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		Level:     LevelWarning,
		Text:      "disk nearly full!", // 17 bytes
		File:      "disk.rs",           // 7 bytes
		Line:      42,
	}

	datagram, err := EncodeMessageV1(msg)
	if err != nil {
		t.Fatalf("expected no error during encode, but got '%v'", err)
	}

	// 22 byte header + 7 byte file name + 2 byte text length + 17 byte text
	if len(datagram) != 48 {
		t.Fatalf("expected 48 byte datagram, got %d", len(datagram))
	}

	decoded, err := DecodeMessageV1(datagram)
	if err != nil {
		t.Fatalf("expected no error during decode, but got '%v'", err)
	}
	if decoded.Level != LevelWarning || decoded.File != "disk.rs" || decoded.Line != 42 || decoded.Text != "disk nearly full!" {
		t.Fatalf("decoded fields do not match encoded message: %+v", decoded)
	}
	if !decoded.Timestamp.Equal(msg.Timestamp) {
		t.Fatalf("timestamp mismatch: got %v want %v", decoded.Timestamp, msg.Timestamp)
	}
}

func TestEncodeRejectsTypedValues(t *testing.T) {
	tests := []struct {
		name  string
		value Value
	}{
		{name: "u8", value: Uint8Value(5)},
		{name: "u16", value: Uint16Value(512)},
		{name: "u32", value: Uint32Value(70000)},
		{name: "u64", value: Uint64Value(1 << 40)},
		{name: "i8", value: Int8Value(-5)},
		{name: "i16", value: Int16Value(-512)},
		{name: "i32", value: Int32Value(-70000)},
		{name: "i64", value: Int64Value(-(1 << 40))},
		{name: "f32", value: Float32Value(3.5)},
		{name: "f64", value: Float64Value(-2.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message{
				Timestamp: time.Now(),
				Level:     LevelInformation,
				Text:      "value attached",
				File:      "metrics.go",
				Line:      10,
				Value:     tt.value,
			}

			_, err := EncodeMessageV1(msg)
			if err == nil {
				t.Fatal("expected unsupported payload error, but got none")
			}
			if !errors.Is(err, ErrUnsupportedPayload) {
				t.Fatalf("expected ErrUnsupportedPayload, but got '%v'", err)
			}
		})
	}
}

func TestEncodeRejectsOversizedFields(t *testing.T) {
	base := Message{
		Timestamp: time.Now(),
		Level:     LevelInformation,
		Text:      "ok",
		File:      "ok.go",
		Line:      1,
	}

	t.Run("oversized text", func(t *testing.T) {
		msg := base
		msg.Text = strings.Repeat("a", MaxTextLen+1)

		_, err := EncodeMessageV1(msg)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Fatalf("expected ErrFieldTooLong, but got '%v'", err)
		}
	})

	t.Run("oversized file name", func(t *testing.T) {
		msg := base
		msg.File = strings.Repeat("b", MaxFileNameLen+1)

		_, err := EncodeMessageV1(msg)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Fatalf("expected ErrFieldTooLong, but got '%v'", err)
		}
	})

	t.Run("maximum lengths accepted", func(t *testing.T) {
		msg := base
		msg.Text = strings.Repeat("a", MaxTextLen)
		msg.File = strings.Repeat("b", MaxFileNameLen)

		datagram, err := EncodeMessageV1(msg)
		if err != nil {
			t.Fatalf("expected no error at maximum field lengths, but got '%v'", err)
		}
		wantLen := HeaderLenV1 + MaxFileNameLen + 2 + MaxTextLen
		if len(datagram) != wantLen {
			t.Fatalf("expected datagram length %d, got %d", wantLen, len(datagram))
		}
	})
}

func TestEncodeRejectsInvalidLevel(t *testing.T) {
	for _, code := range []uint8{5, 17, 255} {
		msg := Message{
			Timestamp: time.Now(),
			Level:     Level(code),
			Text:      "bad level",
			File:      "bad.go",
			Line:      1,
		}

		_, err := EncodeMessageV1(msg)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Fatalf("expected ErrUnknownLevel for code %d, but got '%v'", code, err)
		}
	}
}

func encodeTestDatagram(t *testing.T) (datagram []byte) {
	t.Helper()

	msg := Message{
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		Level:     LevelWarning,
		Text:      "disk nearly full!",
		File:      "disk.rs",
		Line:      42,
	}

	datagram, err := EncodeMessageV1(msg)
	if err != nil {
		t.Fatalf("expected no error building test datagram, but got '%v'", err)
	}
	return
}

func TestDecodeRejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(datagram []byte)
		expectErr error
	}{
		{
			name:      "wrong version zero",
			mutate:    func(d []byte) { d[0] = 0 },
			expectErr: ErrBadVersion,
		},
		{
			name:      "wrong version two",
			mutate:    func(d []byte) { d[0] = 2 },
			expectErr: ErrBadVersion,
		},
		{
			name:      "typed value payload",
			mutate:    func(d []byte) { d[1] = PayloadTypedValue },
			expectErr: ErrUnsupportedPayload,
		},
		{
			name:      "unknown payload type",
			mutate:    func(d []byte) { d[1] = 9 },
			expectErr: ErrBadPayloadType,
		},
		{
			name:      "zero message count",
			mutate:    func(d []byte) { d[2], d[3] = 0, 0 },
			expectErr: ErrBadCount,
		},
		{
			name:      "multi message count",
			mutate:    func(d []byte) { d[2], d[3] = 0, 2 },
			expectErr: ErrBadCount,
		},
		{
			name:      "level just past valid range",
			mutate:    func(d []byte) { d[11] = 5 },
			expectErr: ErrUnknownLevel,
		},
		{
			name:      "level far past valid range",
			mutate:    func(d []byte) { d[11] = 255 },
			expectErr: ErrUnknownLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datagram := encodeTestDatagram(t)
			tt.mutate(datagram)

			_, err := DecodeMessageV1(datagram)
			if err == nil {
				t.Fatal("expected decode error, but got none")
			}
			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected '%v', but got '%v'", tt.expectErr, err)
			}
		})
	}
}

// Both halves of the level range check: every defined severity decodes,
// the first code past the range does not.
func TestDecodeLevelRangeCheck(t *testing.T) {
	for code := uint8(0); code <= 4; code++ {
		datagram := encodeTestDatagram(t)
		datagram[11] = code

		decoded, err := DecodeMessageV1(datagram)
		if err != nil {
			t.Fatalf("expected valid level code %d to decode, but got '%v'", code, err)
		}
		if decoded.Level.Code() != code {
			t.Fatalf("expected decoded level code %d, got %d", code, decoded.Level.Code())
		}
	}

	datagram := encodeTestDatagram(t)
	datagram[11] = 5

	_, err := DecodeMessageV1(datagram)
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel for code 5, but got '%v'", err)
	}
}

func TestDecodeRejectsTruncatedDatagrams(t *testing.T) {
	full := encodeTestDatagram(t)

	tests := []struct {
		name string
		cut  int
	}{
		{name: "empty", cut: 0},
		{name: "mid header", cut: 10},
		{name: "one short of header", cut: HeaderLenV1 - 1},
		{name: "mid file name", cut: HeaderLenV1 + 3},
		{name: "before text length", cut: HeaderLenV1 + 7},
		{name: "mid text length", cut: HeaderLenV1 + 8},
		{name: "mid text", cut: len(full) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMessageV1(full[:tt.cut])
			if err == nil {
				t.Fatal("expected truncation error, but got none")
			}
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("expected ErrTruncated, but got '%v'", err)
			}
		})
	}
}

func TestDecodeToleratesTrailingPadding(t *testing.T) {
	datagram := encodeTestDatagram(t)
	padded := append(append([]byte{}, datagram...), 0xDE, 0xAD, 0xBE, 0xEF)

	decoded, err := DecodeMessageV1(padded)
	if err != nil {
		t.Fatalf("expected no error with trailing padding, but got '%v'", err)
	}
	if decoded.Text != "disk nearly full!" {
		t.Fatalf("expected text preserved with trailing padding, got %q", decoded.Text)
	}
}
