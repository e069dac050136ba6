package sender

import (
	"fmt"
	"io"
	"os"

	"wirelog/pkg/protocol"

	"golang.org/x/term"
)

type consoleSink struct {
	writer io.Writer
	color  bool
}

func newConsoleSink(writer io.Writer, forceColor bool) (out *consoleSink) {
	color := forceColor

	// Only emit escapes when writing to an actual terminal
	if !color {
		file, isFile := writer.(*os.File)
		if isFile {
			color = term.IsTerminal(int(file.Fd()))
		}
	}

	out = &consoleSink{
		writer: writer,
		color:  color,
	}
	return
}

// Writes one line per message, color escaped by level with a reset at line
// end
func (out *consoleSink) write(msg protocol.Message) (err error) {
	line := formatLine(msg)

	if out.color {
		_, err = fmt.Fprintf(out.writer, "%s%s%s\n", levelColors[msg.Level], line, colorReset)
		return
	}

	_, err = fmt.Fprintln(out.writer, line)
	return
}

func (out *consoleSink) close() (err error) {
	return
}
