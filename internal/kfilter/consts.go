package kfilter

const (
	// Socket filters on UDP sockets see the datagram starting at the UDP
	// header, so the first payload byte sits past the 8 header bytes
	versionByteOffset int32 = 8

	// Return value for accepted datagrams, large enough to never truncate
	acceptFullPacket int32 = 0x40000

	programName string = "wire_version_gate"
)
