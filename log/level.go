package log

import (
	"fmt"
	"strings"
)

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const (
	lblTrace = "TRACE"
	lblDebug = "DEBUG"
	lblInfo  = "INFO"
	lblWarn  = "WARN"
	lblError = "ERROR"
	lblFatal = "FATAL"
	lblQuiet = "QUIET"
)

const (
	colorReset = "\033[0m"

	colorTrace = "\033[38m"
	colorDebug = "\033[37m"
	colorInfo  = "\033[36m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
	colorFatal = "\033[41m"
	colorQuiet = colorReset

	colorTraceBold = "\033[47m"
	colorDebugBold = "\033[100m"
	colorInfoBold  = "\033[106m"
	colorWarnBold  = "\u001B[30m\033[103m"
	colorErrorBold = "\033[101m"
	colorFatalBold = "\033[101m"
	colorQuietBold = ""
)

var levels = [...]struct {
	label, color, bold string
}{
	TRACE: {lblTrace, colorTrace, colorTraceBold},
	DEBUG: {lblDebug, colorDebug, colorDebugBold},
	INFO:  {lblInfo, colorInfo, colorInfoBold},
	WARN:  {lblWarn, colorWarn, colorWarnBold},
	ERROR: {lblError, colorError, colorErrorBold},
	FATAL: {lblFatal, colorFatal, colorFatalBold},
	QUIET: {lblQuiet, colorQuiet, colorQuietBold},
}

func (l Level) known() Level {
	if l < TRACE || l > QUIET {
		return QUIET
	}

	return l
}

func (l Level) String() string {
	return levels[l.known()].label
}

func (l Level) BoldColor() string {
	return levels[l.known()].bold
}

func (l Level) Color() string {
	return levels[l.known()].color
}

// FromString is case-insensitive. Unknown names are QUIET.
func FromString(l string) Level {
	lvl, err := parseLevel(l)
	if err != nil {
		return QUIET
	}

	return lvl
}

func parseLevel(l string) (Level, error) {
	l = strings.ToUpper(l)
	for lvl := range levels {
		if levels[lvl].label == l {
			return Level(lvl), nil
		}
	}

	return QUIET, fmt.Errorf("log: unknown level %q", l)
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText makes Level usable as a flag.TextVar value.
func (l *Level) UnmarshalText(text []byte) (err error) {
	*l, err = parseLevel(string(text))

	return err
}
