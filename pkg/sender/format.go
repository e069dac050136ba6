package sender

import (
	"fmt"

	"wirelog/pkg/protocol"
)

const timestampLayout string = "2006-01-02|15:04:05.000000000"

const colorReset string = "\x1B[0m"

// Escape prefix per severity, reset for trace so it renders in the default
// color
var levelColors = map[protocol.Level]string{
	protocol.LevelTrace:       "\x1B[0m",
	protocol.LevelInformation: "\x1B[32m",
	protocol.LevelWarning:     "\x1B[33m",
	protocol.LevelError:       "\x1B[31m",
	protocol.LevelFatal:       "\x1B[35m",
}

// Renders one message as a plain log line without color escapes
func formatLine(msg protocol.Message) (line string) {
	line = fmt.Sprintf("[%d] - <%s> (%s(%d)) %s",
		msg.Level.Code(),
		msg.Timestamp.Format(timestampLayout),
		msg.File,
		msg.Line,
		msg.Text)
	return
}
