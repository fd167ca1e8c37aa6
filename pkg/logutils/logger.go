package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats accepted by New.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// New returns a new logger. If file is empty, logs are written to stderr,
// otherwise they are appended to file.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// The format parameter selects JSON lines, human-readable console output,
// or "auto" which picks console only when writing to a terminal.
func New(level, file, format string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	out := os.Stderr
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		out = osFile
	}

	var writer io.Writer = out
	switch format {
	case FormatJSON:
	case FormatConsole:
		writer = consoleWriter(out)
	case FormatAuto, "":
		if isTerminal(out) {
			writer = consoleWriter(out)
		}
	default:
		closer()
		return zerolog.Logger{}, func() {}, fmt.Errorf("unknown log format %q", format)
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
}
