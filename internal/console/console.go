package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var ErrUnknownLevel = errors.New("unknown console level")

// Level - severity of a console message. Messages below the console's
// configured level are dropped.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelNecessary
)

// ParseLevel - maps the CLI level names (and their shorthands) to a Level.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "d", "debug":
		return LevelDebug, nil
	case "i", "info":
		return LevelInfo, nil
	case "w", "warn", "warning":
		return LevelWarning, nil
	case "n", "necessary":
		return LevelNecessary, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// Console - the user-facing status sink. It prints leveled messages and keeps
// a single pinned progress line at the bottom of the output. Every message is
// mirrored to the structured logger. Not safe for concurrent use; the whole
// engine runs on a single tick thread.
type Console struct {
	out    io.Writer
	logger *slog.Logger
	level  Level
	tty    bool
	pinned string
}

// New - a console writing to out. The pinned line is rewritten in place only
// when out is a terminal; otherwise progress updates are printed as plain
// lines whenever they change.
func New(out *os.File, level Level, logger *slog.Logger) *Console {
	tty := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())

	return NewWithWriter(out, tty, level, logger)
}

// NewWithWriter - like New but with an explicit writer and terminal flag.
func NewWithWriter(out io.Writer, tty bool, level Level, logger *slog.Logger) *Console {
	return &Console{
		out:    out,
		logger: logger,
		level:  level,
		tty:    tty,
	}
}

// Notify - prints message if level passes the configured threshold.
func (that *Console) Notify(level Level, message string) {
	that.mirror(level, message)

	if level < that.level {
		return
	}

	that.clearPinned()
	fmt.Fprintln(that.out, message)

	if that.pinned != "" && that.tty {
		fmt.Fprint(that.out, that.pinned)
	}
}

func (that *Console) Print(message string) {
	that.Notify(LevelNecessary, message)
}

func (that *Console) Warn(message string) {
	that.Notify(LevelWarning, message)
}

func (that *Console) Info(message string) {
	that.Notify(LevelInfo, message)
}

func (that *Console) Debug(message string) {
	that.Notify(LevelDebug, message)
}

// Pin - replaces the pinned progress line.
func (that *Console) Pin(message string) {
	if !that.tty {
		// without a terminal there is nothing to rewrite, so only report changes
		if message != that.pinned {
			fmt.Fprintln(that.out, message)
			that.pinned = message
		}
		return
	}

	that.clearPinned()
	fmt.Fprint(that.out, message)
	that.pinned = message
}

// Unpin - removes the pinned line, leaving the output ready for final reports.
func (that *Console) Unpin() {
	that.clearPinned()
	that.pinned = ""
}

func (that *Console) clearPinned() {
	if that.pinned == "" || !that.tty {
		return
	}

	// clear the current line and return the cursor to column 0
	fmt.Fprint(that.out, "\r\x1b[2K")
}

func (that *Console) mirror(level Level, message string) {
	if that.logger == nil {
		return
	}

	switch level {
	case LevelDebug:
		that.logger.Debug(message)
	case LevelInfo:
		that.logger.Info(message)
	case LevelWarning:
		that.logger.Warn(message)
	case LevelNecessary:
		that.logger.Info(message)
	}
}
