package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
)

// DefaultLogger is a leveled logger on top of Go's standard log package.
// Debug and Info go to the out stream; Warn, Error and Fatal go to the err
// stream, and Fatal then exits.
type DefaultLogger struct {
	out    *log.Logger
	err    *log.Logger
	level  Level
	fields Fields
	exit   func(code int)
}

// NewDefaultLogger creates a logger on stdout and stderr with timestamps.
func NewDefaultLogger() *DefaultLogger {
	return newLogger(log.New(os.Stdout, "", log.LstdFlags), log.New(os.Stderr, "", log.LstdFlags))
}

// NewWriterLogger creates a logger writing to the given streams without
// timestamps. Used by the CLI and tests.
func NewWriterLogger(stdout, stderr io.Writer) *DefaultLogger {
	return newLogger(log.New(stdout, "", 0), log.New(stderr, "", 0))
}

func newLogger(out, err *log.Logger) *DefaultLogger {
	return &DefaultLogger{
		out:    out,
		err:    err,
		level:  InfoLevel,
		fields: make(Fields),
		exit:   os.Exit,
	}
}

// Enabled reports whether messages at level are written.
func (d *DefaultLogger) Enabled(level Level) bool {
	return level >= d.level
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields []Fields) string {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		line += fmt.Sprintf(": %v", err)
	}

	merged := make(Fields, len(d.fields))
	maps.Copy(merged, d.fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}
	if len(merged) > 0 {
		line += fmt.Sprintf(" %+v", merged)
	}
	return line
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields []Fields) {
	if !d.Enabled(level) {
		return
	}

	line := d.format(level, err, msg, fields)
	if level < WarnLevel {
		d.out.Println(line)
		return
	}
	d.err.Println(line)
	if level == FatalLevel {
		d.exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	child := *d
	child.fields = make(Fields, len(d.fields)+len(fields))
	maps.Copy(child.fields, d.fields)
	maps.Copy(child.fields, fields)
	return &child
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// NoOpLogger discards everything. Installed by SetGlobalLogger(nil).
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
func (n *NoOpLogger) Enabled(level Level) bool                      { return false }
