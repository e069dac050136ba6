package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Serializes a message into a single v1 datagram.
// Validates field limits first, then builds the 22-byte fixed header,
// the file name, and the length-prefixed text.
func EncodeMessageV1(msg Message) (datagram []byte, err error) {
	header, text, err := prepareWireFields(msg)
	if err != nil {
		return
	}

	datagram, err = ConstructDatagramV1(header, text)
	return
}

// Validates a message against v1 wire limits and maps it onto header fields
func prepareWireFields(msg Message) (header HeaderV1, text []byte, err error) {
	// Typed values are declared in the protocol but have no v1 encoding
	if !msg.Value.Absent() {
		err = fmt.Errorf("%w: %s values cannot be encoded", ErrUnsupportedPayload, msg.Value.Kind())
		return
	}

	if !msg.Level.Valid() {
		err = fmt.Errorf("%w: %d", ErrUnknownLevel, msg.Level.Code())
		return
	}

	// Oversized fields corrupt the length prefix, reject rather than truncate
	if len(msg.File) > MaxFileNameLen {
		err = fmt.Errorf("%w: file name length %d exceeds %d", ErrFieldTooLong, len(msg.File), MaxFileNameLen)
		return
	}
	if len(msg.Text) > MaxTextLen {
		err = fmt.Errorf("%w: text length %d exceeds %d", ErrFieldTooLong, len(msg.Text), MaxTextLen)
		return
	}

	year := msg.Timestamp.Year()
	if year < 0 || year > maxWireYear {
		err = fmt.Errorf("%w: year %d does not fit wire field", ErrFieldTooLong, year)
		return
	}

	header = HeaderV1{
		Version:     WireVersion1,
		PayloadType: PayloadText,
		Count:       1,
		Year:        uint16(year),
		Month:       uint8(msg.Timestamp.Month()),
		Day:         uint8(msg.Timestamp.Day()),
		Hour:        uint8(msg.Timestamp.Hour()),
		Minute:      uint8(msg.Timestamp.Minute()),
		Second:      uint8(msg.Timestamp.Second()),
		LevelCode:   msg.Level.Code(),
		Nanosecond:  uint32(msg.Timestamp.Nanosecond()),
		Line:        msg.Line,
		FileName:    []byte(msg.File),
	}
	text = []byte(msg.Text)
	return
}

// Serializes header fields and text into transport bytes
// Does not validate fields against protocol limits
func ConstructDatagramV1(header HeaderV1, text []byte) (datagram []byte, err error) {
	var buf bytes.Buffer

	// HEADER
	if err = writeByte(&buf, header.Version); err != nil {
		err = fmt.Errorf("failed to serialize Version: %v", err)
		return
	}
	if err = writeByte(&buf, header.PayloadType); err != nil {
		err = fmt.Errorf("failed to serialize PayloadType: %v", err)
		return
	}
	if err = writeUint16(&buf, header.Count); err != nil {
		err = fmt.Errorf("failed to serialize Count: %v", err)
		return
	}

	// TIMESTAMP
	if err = writeUint16(&buf, header.Year); err != nil {
		err = fmt.Errorf("failed to serialize Year: %v", err)
		return
	}
	if err = writeByte(&buf, header.Month); err != nil {
		err = fmt.Errorf("failed to serialize Month: %v", err)
		return
	}
	if err = writeByte(&buf, header.Day); err != nil {
		err = fmt.Errorf("failed to serialize Day: %v", err)
		return
	}
	if err = writeByte(&buf, header.Hour); err != nil {
		err = fmt.Errorf("failed to serialize Hour: %v", err)
		return
	}
	if err = writeByte(&buf, header.Minute); err != nil {
		err = fmt.Errorf("failed to serialize Minute: %v", err)
		return
	}
	if err = writeByte(&buf, header.Second); err != nil {
		err = fmt.Errorf("failed to serialize Second: %v", err)
		return
	}

	// METADATA
	if err = writeByte(&buf, header.LevelCode); err != nil {
		err = fmt.Errorf("failed to serialize Level: %v", err)
		return
	}
	if err = binary.Write(&buf, binary.BigEndian, header.Nanosecond); err != nil {
		err = fmt.Errorf("failed to serialize Nanosecond: %v", err)
		return
	}
	if err = binary.Write(&buf, binary.BigEndian, header.Line); err != nil {
		err = fmt.Errorf("failed to serialize Line: %v", err)
		return
	}

	// ORIGIN
	if err = writeUint16(&buf, uint16(len(header.FileName))); err != nil {
		err = fmt.Errorf("failed to serialize FileName length: %v", err)
		return
	}
	if err = writeFixedLength(&buf, header.FileName, len(header.FileName)); err != nil {
		err = fmt.Errorf("failed to serialize FileName: %v", err)
		return
	}

	// DATA
	if err = writeUint16(&buf, uint16(len(text))); err != nil {
		err = fmt.Errorf("failed to serialize Text length: %v", err)
		return
	}
	if err = writeFixedLength(&buf, text, len(text)); err != nil {
		err = fmt.Errorf("failed to serialize Text: %v", err)
		return
	}

	// Return the serialized datagram
	datagram = buf.Bytes()
	return
}

// Write single byte to provided buffer (big endian)
func writeByte(buf *bytes.Buffer, b uint8) (err error) {
	err = binary.Write(buf, binary.BigEndian, b)
	return
}

// Write two bytes to provided buffer (big endian)
func writeUint16(buf *bytes.Buffer, b uint16) (err error) {
	err = binary.Write(buf, binary.BigEndian, b)
	if err != nil {
		err = fmt.Errorf("failed to write uint16: %v", err)
		return
	}
	return
}

// Writes provided data of exact length to provided buffer
func writeFixedLength(buf *bytes.Buffer, data []byte, length int) (err error) {
	// Require length to be correct
	if len(data) > length {
		err = fmt.Errorf("data exceeds expected length: %d", length)
		return
	}

	_, err = buf.Write(data)
	if err != nil {
		err = fmt.Errorf("failed to write: %v", err)
		return
	}

	return
}
