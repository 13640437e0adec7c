package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/msgetl/internal/tui"
)

// ConsoleLogger writes progress messages to out and errors to errOut.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	styled  bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing progress to out and
// errors to errOut (normally stdout and stderr).
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are colored only when out is a terminal.
func NewConsoleLogger(out, errOut io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		styled:  tui.IsStyled(out),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.out, l.prefix("[VERBOSE]", tui.VerboseStyle.Render), format, args)
}

// Info logs progress messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, "", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, l.prefix("[ERROR]", tui.ErrorStyle.Render), format, args)
}

func (l *ConsoleLogger) prefix(tag string, render func(...string) string) string {
	if l.styled {
		return render(tag) + " "
	}
	return tag + " "
}

func (l *ConsoleLogger) write(w io.Writer, prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(w, prefix+format+"\n")
	}
}
