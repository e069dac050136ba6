package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Deserializes a v1 datagram into a message.
// Structural parse first, then semantic validation of version, count, and
// level, then reconstruction of the timestamp in local time.
func DecodeMessageV1(datagram []byte) (msg Message, err error) {
	header, text, err := DeconstructDatagramV1(datagram)
	if err != nil {
		return
	}

	err = ValidateHeaderV1(header)
	if err != nil {
		return
	}

	level, err := LevelFromCode(header.LevelCode)
	if err != nil {
		return
	}

	msg = Message{
		Timestamp: time.Date(
			int(header.Year),
			time.Month(header.Month),
			int(header.Day),
			int(header.Hour),
			int(header.Minute),
			int(header.Second),
			int(header.Nanosecond),
			time.Local,
		),
		Level: level,
		Text:  string(text),
		File:  string(header.FileName),
		Line:  header.Line,
	}
	return
}

// Deserializes transport bytes into header fields and text
// Does not validate fields against protocol spec (only validates lengths)
func DeconstructDatagramV1(datagram []byte) (header HeaderV1, text []byte, err error) {
	// Immediately reject invalid length
	if len(datagram) < HeaderLenV1 {
		err = fmt.Errorf("%w: %d bytes, fixed header needs %d", ErrTruncated, len(datagram), HeaderLenV1)
		return
	}

	buf := bytes.NewReader(datagram)

	// HEADER
	if err = binary.Read(buf, binary.BigEndian, &header.Version); err != nil {
		err = fmt.Errorf("failed to deserialize Version: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.PayloadType); err != nil {
		err = fmt.Errorf("failed to deserialize PayloadType: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Count); err != nil {
		err = fmt.Errorf("failed to deserialize Count: %v", err)
		return
	}

	// TIMESTAMP
	if err = binary.Read(buf, binary.BigEndian, &header.Year); err != nil {
		err = fmt.Errorf("failed to deserialize Year: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Month); err != nil {
		err = fmt.Errorf("failed to deserialize Month: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Day); err != nil {
		err = fmt.Errorf("failed to deserialize Day: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Hour); err != nil {
		err = fmt.Errorf("failed to deserialize Hour: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Minute); err != nil {
		err = fmt.Errorf("failed to deserialize Minute: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Second); err != nil {
		err = fmt.Errorf("failed to deserialize Second: %v", err)
		return
	}

	// METADATA
	if err = binary.Read(buf, binary.BigEndian, &header.LevelCode); err != nil {
		err = fmt.Errorf("failed to deserialize Level: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Nanosecond); err != nil {
		err = fmt.Errorf("failed to deserialize Nanosecond: %v", err)
		return
	}
	if err = binary.Read(buf, binary.BigEndian, &header.Line); err != nil {
		err = fmt.Errorf("failed to deserialize Line: %v", err)
		return
	}

	// ORIGIN
	var fileNameLen uint16
	if err = binary.Read(buf, binary.BigEndian, &fileNameLen); err != nil {
		err = fmt.Errorf("failed to deserialize FileName length: %v", err)
		return
	}
	header.FileName = make([]byte, fileNameLen)
	if _, err = io.ReadFull(buf, header.FileName); err != nil {
		err = fmt.Errorf("%w: file name cut short, want %d bytes: %v", ErrTruncated, fileNameLen, err)
		return
	}

	// DATA
	var textLen uint16
	if err = binary.Read(buf, binary.BigEndian, &textLen); err != nil {
		err = fmt.Errorf("%w: missing text length: %v", ErrTruncated, err)
		return
	}
	text = make([]byte, textLen)
	if _, err = io.ReadFull(buf, text); err != nil {
		err = fmt.Errorf("%w: text cut short, want %d bytes: %v", ErrTruncated, textLen, err)
		return
	}

	// Bytes past the text are tolerated as padding

	return
}

// Validates header fields against the protocol spec
func ValidateHeaderV1(header HeaderV1) (err error) {
	if header.Version != WireVersion1 {
		err = fmt.Errorf("%w: %d", ErrBadVersion, header.Version)
		return
	}

	switch header.PayloadType {
	case PayloadText:
	case PayloadTypedValue:
		// Declared kind with no v1 decoding, surfaced as a structured error
		err = fmt.Errorf("%w: typed value payloads cannot be decoded", ErrUnsupportedPayload)
		return
	default:
		err = fmt.Errorf("%w: %d", ErrBadPayloadType, header.PayloadType)
		return
	}

	if header.Count == 0 {
		err = fmt.Errorf("%w: count must be at least 1", ErrBadCount)
		return
	}
	if header.Count != 1 {
		err = fmt.Errorf("%w: %d messages in one datagram, only 1 supported", ErrBadCount, header.Count)
		return
	}

	// Reject when the level byte does not map to a known severity
	if _, lvlErr := LevelFromCode(header.LevelCode); lvlErr != nil {
		err = lvlErr
		return
	}

	return
}
