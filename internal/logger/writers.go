package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	// consoleTimeFormat keeps interactive output short; runs rarely span days.
	consoleTimeFormat = "15:04:05"
	textTimeFormat    = time.RFC3339
)

// newFormatWriter wraps out for the given format. Console output is coloured
// only when out is a terminal; text output never is.
func newFormatWriter(format LogFormat, out io.Writer) io.Writer {
	switch format {
	case FormatJSON:
		return out
	case FormatText:
		return newTextWriter(out)
	default:
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: consoleTimeFormat,
			NoColor:    !isTerminal(out),
		}
	}
}

// newTextWriter renders human-readable lines with full timestamps, the form
// used for log files whatever the console format is.
func newTextWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: textTimeFormat,
		NoColor:    true,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
