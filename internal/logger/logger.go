// Package logger writes leveled, component-tagged lines:
//
//	[15:04:05.000] INFO [run] run finished [algorithm=merge count=12 merges]
//
// Debug and Info are only written when the verbose callback reports true.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field { return Field{Key: key, Value: value} }

func Err(err error) Field { return Field{Key: "error", Value: err} }

func Duration(d time.Duration) Field { return Field{Key: "duration", Value: d} }

// sink is shared by every logger derived from the same root so that
// SetOutput redirects all of them at once.
type sink struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

type Logger struct {
	component string
	verbose   func() bool
	sink      *sink
}

// New returns a logger writing to stderr. A nil verbose callback means
// Debug and Info are dropped.
func New(component string, verbose func() bool) *Logger {
	return &Logger{
		component: component,
		verbose:   verbose,
		sink:      &sink{out: os.Stderr, now: time.Now},
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l := New("", nil)
	l.SetOutput(io.Discard)
	return l
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{component: component, verbose: l.verbose, sink: l.sink}
}

// SetOutput redirects this logger and every logger sharing its root.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.out = w
}

// Output returns the writer currently shared by this logger's root.
func (l *Logger) Output() io.Writer {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.out
}

func (l *Logger) IsVerbose() bool {
	return l.verbose != nil && l.verbose()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	if l.IsVerbose() {
		l.write("DEBUG", msg, fields)
	}
}

func (l *Logger) Info(msg string, fields ...Field) {
	if l.IsVerbose() {
		l.write("INFO", msg, fields)
	}
}

func (l *Logger) Warn(msg string, fields ...Field) { l.write("WARN", msg, fields) }

func (l *Logger) Error(msg string, fields ...Field) { l.write("ERROR", msg, fields) }

func (l *Logger) write(level, msg string, fields []Field) {
	component := l.component
	if component == "" {
		component = "main"
	}

	var b strings.Builder
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	fmt.Fprintf(&b, "[%s] %s [%s] %s", l.sink.now().Format("15:04:05.000"), level, component, msg)
	if len(fields) > 0 {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, " "))
	}
	b.WriteByte('\n')

	// nowhere left to report a failed log write
	_, _ = io.WriteString(l.sink.out, b.String())
}
