// Package logger wraps zerolog for the envbind-gen command.
//
// The library packages never log; only the command does.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger, so Debug, Info, Warn and Error are available directly.
type Logger struct {
	zerolog.Logger
}

// New returns a logger writing JSON lines to w, tagged with role.
// Debug entries are emitted only when verbose is set.
func New(w io.Writer, role string, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// NewConsole is New with a human-readable console writer. Colors are used only
// when out is a terminal.
func NewConsole(out io.Writer, role string, verbose bool) *Logger {
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !isTerminal(out)}
	return New(w, role, verbose)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger inheriting the receiver's fields plus key=value.
func (l *Logger) Child(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}
