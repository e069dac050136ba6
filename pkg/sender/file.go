package sender

import (
	"bufio"
	"fmt"
	"os"

	"wirelog/pkg/protocol"
)

type fileSink struct {
	file   *os.File
	writer *bufio.Writer
}

// Creates or truncates the log file. A path that cannot be created fails
// logger construction, never the running worker.
func newFileSink(path string) (out *fileSink, err error) {
	file, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("failed to create log file: %v", err)
		return
	}

	out = &fileSink{
		file:   file,
		writer: bufio.NewWriter(file),
	}
	return
}

// Writes one plain formatted line per message, flushed per line so a crash
// loses at most the line being written
func (out *fileSink) write(msg protocol.Message) (err error) {
	_, err = out.writer.WriteString(formatLine(msg) + "\n")
	if err != nil {
		err = fmt.Errorf("failed to write log line: %v", err)
		return
	}

	err = out.writer.Flush()
	if err != nil {
		err = fmt.Errorf("failed to flush log line: %v", err)
		return
	}
	return
}

func (out *fileSink) close() (err error) {
	flushErr := out.writer.Flush()

	err = out.file.Close()
	if err == nil {
		err = flushErr
	}
	return
}
