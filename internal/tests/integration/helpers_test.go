package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"wirelog/internal/logctx"
)

// Uses logger in context to search logger buffer for events matching filter (must match all 3 filters if filters are not empty)
func filterLogBuffer(ctx context.Context, searchText, searchTag, searchSeverity string) (matches string, found bool) {
	logger := logctx.GetLogger(ctx)
	if logger == nil {
		return
	}

	lines := logger.GetFormattedLogLines()

	bracketRe := regexp.MustCompile(`\[[^\]]*\]`)
	var re *regexp.Regexp
	if searchTag != "" {
		re = regexp.MustCompile(regexp.QuoteMeta(searchTag))
	}

	// Regex to strip the timestamp prefix [YYYY-MM-DDThh:mm:ss...]
	timestampRe := regexp.MustCompile(`^\[[^\]]*\]\s*`)

	var foundLines []string
	lastMsg := ""

	for _, line := range lines {
		// Remove the timestamp for comparison
		msgOnly := timestampRe.ReplaceAllString(line, "")

		// Skip partial duplicates (same message ignoring timestamp)
		if msgOnly == lastMsg {
			continue
		}

		// Filter by tag if searchTag is non-empty
		if re != nil {
			brackets := bracketRe.FindAllString(line, -1)
			foundTag := false
			for _, b := range brackets {
				if re.MatchString(b) {
					foundTag = true
					break
				}
			}
			if !foundTag {
				continue
			}
		}

		// Filter by severity if searchSeverity is non-empty
		if searchSeverity != "" && !strings.Contains(line, "["+searchSeverity+"]") {
			continue
		}

		// Filter by text if searchText is non-empty
		if searchText != "" && !strings.Contains(line, searchText) {
			continue
		}

		// Passed all filters, include line
		foundLines = append(foundLines, line)
		found = true
		lastMsg = msgOnly
	}

	matches = strings.Join(foundLines, "")
	return
}

// For watching for output of the receive relay
func waitForCompleteLines(f *os.File, expected int) (lines []string, err error) {
	deadline := time.Now().Add(10 * time.Second) // Default timeout

	var (
		lastSize    int64 = -1
		stableSince time.Time
	)

	for {
		if time.Now().After(deadline) {
			err = fmt.Errorf("timeout waiting for %d complete lines", expected)
			return
		}

		var info os.FileInfo
		info, err = f.Stat()
		if err != nil {
			return
		}

		curSize := info.Size()
		if curSize != lastSize {
			// file changed
			lastSize = curSize
			stableSince = time.Now()
		}

		// read whole file
		_, err = f.Seek(0, io.SeekStart)
		if err != nil {
			return
		}

		var data []byte
		data, err = io.ReadAll(f)
		if err != nil {
			return
		}

		// split lines, discarding the incomplete final line
		rawLines := bytes.Split(data, []byte("\n"))
		if len(rawLines) > 0 && len(rawLines[len(rawLines)-1]) == 0 {
			rawLines = rawLines[:len(rawLines)-1]
		}

		// are there enough complete lines, and has the file been quiet long enough?
		if len(rawLines) >= expected && time.Since(stableSince) >= 150*time.Millisecond {
			for _, ln := range rawLines {
				lines = append(lines, string(ln))
			}
			return
		}

		// otherwise wait and retry
		time.Sleep(2 * time.Millisecond)
	}
}
