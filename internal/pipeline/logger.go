package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/golang/glog"
)

// Logger reports normalization progress. Sections are numbered in the order
// they start and carry the size of the automaton they work on. Every line is
// also sent to glog at verbosity 2, whether or not the logger is enabled.
type Logger struct {
	enabled bool
	out     io.Writer
	step    int
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	l.emit("", fmt.Sprintf(format, args...))
}

// Section starts a numbered section, e.g.
//
//	=== 2. Epsilon Elimination (3 states, 1 finals, 4 transitions) ===
//
// a may be nil when the section has no automaton yet.
func (l *Logger) Section(name string, a *automaton.Automaton) {
	l.step++
	header := fmt.Sprintf("%d. %s", l.step, name)
	if a != nil {
		header += " " + shape(a)
	}
	l.emit("\n", "=== "+header+" ===")
}

// Automaton logs the kind and size of a under label.
func (l *Logger) Automaton(label string, a *automaton.Automaton) {
	l.Log("%s: %s %s", label, automaton.Classify(a), shape(a))
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) emit(lead, msg string) {
	glog.V(2).Info(msg)
	if l.enabled {
		fmt.Fprintf(l.out, "%s[dfagen] %s\n", lead, msg)
	}
}

func shape(a *automaton.Automaton) string {
	return fmt.Sprintf("(%d states, %d finals, %d transitions)", len(a.States), len(a.Finals), len(a.Transitions))
}
