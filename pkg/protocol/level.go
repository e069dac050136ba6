package protocol

import (
	"fmt"
	"strings"
)

// Message severity. Five-way total order used for both local filtering
// and wire encoding.
type Level uint8

const (
	LevelTrace       Level = 0
	LevelInformation Level = 1
	LevelWarning     Level = 2
	LevelError       Level = 3
	LevelFatal       Level = 4
)

// Lookup tables between level keywords and wire codes
var (
	levelToName = map[Level]string{
		LevelTrace:       "trace",
		LevelInformation: "information",
		LevelWarning:     "warning",
		LevelError:       "error",
		LevelFatal:       "fatal",
	}
	nameToLevel = map[string]Level{
		"trace":       LevelTrace,
		"information": LevelInformation,
		"warning":     LevelWarning,
		"error":       LevelError,
		"fatal":       LevelFatal,
	}
)

// Reports whether the level maps to a known severity
func (level Level) Valid() (known bool) {
	_, known = levelToName[level]
	return
}

// Wire representation of the level
func (level Level) Code() (code uint8) {
	code = uint8(level)
	return
}

func (level Level) String() (name string) {
	name, known := levelToName[level]
	if !known {
		name = fmt.Sprintf("unknown(%d)", uint8(level))
	}
	return
}

// Converts a wire level code into a severity.
// Rejects codes that do not map to a known severity.
func LevelFromCode(code uint8) (level Level, err error) {
	level = Level(code)
	if !level.Valid() {
		err = fmt.Errorf("%w: %d", ErrUnknownLevel, code)
		return
	}
	return
}

// Converts a severity keyword into a level
func LevelFromName(name string) (level Level, err error) {
	level, known := nameToLevel[strings.ToLower(name)]
	if !known {
		err = fmt.Errorf("unknown severity keyword: %s", name)
		return
	}
	return
}
