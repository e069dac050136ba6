package protocol

const (
	// Version byte carried in every datagram
	WireVersion1 uint8 = 1

	// Declared payload kinds
	PayloadText       uint8 = 1 // pre-formatted text message
	PayloadTypedValue uint8 = 2 // named typed value, declared but not encodable in v1

	// Protocol wire field lengths (fixed fields)
	lenVersion     int = 1
	lenPayloadType int = 1
	lenCount       int = 2
	lenYear        int = 2
	lenMonth       int = 1
	lenDay         int = 1
	lenHour        int = 1
	lenMinute      int = 1
	lenSecond      int = 1
	lenLevel       int = 1
	lenNanosecond  int = 4
	lenLine        int = 4
	// Length prefix field lengths
	lenFileNameNxtLen int = 2
	lenTextNxtLen     int = 2

	// Variable field limits
	MaxFileNameLen int = (1 << (8 * lenFileNameNxtLen)) - 1
	MaxTextLen     int = (1 << (8 * lenTextNxtLen)) - 1

	// Largest year the wire format can carry
	maxWireYear int = (1 << (8 * lenYear)) - 1

	// Calculated
	HeaderLenV1 int = lenVersion +
		lenPayloadType +
		lenCount +
		lenYear +
		lenMonth +
		lenDay +
		lenHour +
		lenMinute +
		lenSecond +
		lenLevel +
		lenNanosecond +
		lenLine +
		lenFileNameNxtLen
)
