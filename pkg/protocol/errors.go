package protocol

import "errors"

// Sentinel error kinds callers match with errors.Is
var (
	ErrTruncated          = errors.New("datagram truncated")
	ErrBadVersion         = errors.New("unsupported protocol version")
	ErrBadPayloadType     = errors.New("unknown payload type")
	ErrUnsupportedPayload = errors.New("unsupported payload kind")
	ErrBadCount           = errors.New("invalid message count")
	ErrUnknownLevel       = errors.New("unknown level code")
	ErrFieldTooLong       = errors.New("field exceeds wire length limit")
)
