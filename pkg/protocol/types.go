package protocol

import "time"

// Container for external use - the unit of work flowing through every sink.
// Created once by the producer, consumed exactly once.
type Message struct {
	Timestamp time.Time
	Level     Level
	Text      string // byte length must fit in 16 bits
	Value     Value  // optional tagged numeric attachment, absent end-to-end in v1
	File      string // origin file name, byte length must fit in 16 bits
	Line      uint32 // origin line number
	Sender    string // origin network address, set only on received messages
}

// Container for post-header-deserialization.
// Transient decode scratch, never persisted.
type HeaderV1 struct {
	Version     uint8
	PayloadType uint8
	Count       uint16
	Year        uint16
	Month       uint8
	Day         uint8
	Hour        uint8
	Minute      uint8
	Second      uint8
	LevelCode   uint8
	Nanosecond  uint32
	Line        uint32
	FileName    []byte
}
