package app

import (
	"fmt"

	"zxhost/hal"
)

// logger prefixes lines with a level and drops debug lines unless enabled.
type logger struct {
	out   hal.Logger
	debug bool
}

func newLogger(out hal.Logger, debug bool) *logger {
	return &logger{out: out, debug: debug}
}

func (l *logger) write(level, format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.WriteLineString(level + ": " + fmt.Sprintf(format, args...))
}

func (l *logger) infof(format string, args ...any)  { l.write("info", format, args...) }
func (l *logger) errorf(format string, args ...any) { l.write("error", format, args...) }

func (l *logger) debugf(format string, args ...any) {
	if l != nil && l.debug {
		l.write("debug", format, args...)
	}
}
