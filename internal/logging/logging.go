package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the small leveled logger threaded through the pipeline.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type leveled struct {
	logger *log.Logger
	level  int
}

// New returns a Logger writing to w at the given level. Unknown levels fall
// back to info.
func New(w io.Writer, level string) Logger {
	lv, ok := levels[strings.ToLower(level)]
	if !ok {
		lv = levels["info"]
	}
	return &leveled{logger: log.New(w, "", log.LstdFlags), level: lv}
}

// Default logs to stderr at info.
func Default() Logger { return New(os.Stderr, "info") }

// Nop discards everything; handy for tests.
func Nop() Logger { return &leveled{logger: log.New(io.Discard, "", 0), level: levels["error"] + 1} }

func (l *leveled) Debugf(format string, args ...any) { l.printf(levels["debug"], "[DEBUG] ", format, args...) }
func (l *leveled) Infof(format string, args ...any)  { l.printf(levels["info"], "[INFO] ", format, args...) }
func (l *leveled) Warnf(format string, args ...any)  { l.printf(levels["warn"], "[WARN] ", format, args...) }
func (l *leveled) Errorf(format string, args ...any) { l.printf(levels["error"], "[ERROR] ", format, args...) }

func (l *leveled) printf(lv int, prefix, format string, args ...any) {
	if lv < l.level {
		return
	}
	l.logger.Printf(prefix+format, args...)
}
