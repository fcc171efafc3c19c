package clog

import (
	"fmt"
	"io"
	"sync"

	"github.com/apex/log"
)

// Named logging contexts used by the daemon.
const (
	GlobalLoggerCtx = "global"
	HTTPCtx         = "http"
	RegistryCtx     = "registry"
)

// ContextLogger keeps a global logger plus optional per-context loggers,
// each with its own level and writer. A context without its own logger logs
// through the global one.
type ContextLogger struct {
	GlobalLogger   *log.Logger
	ContextLoggers sync.Map
}

func NewContextLogger(globalLoggerWriter io.WriteCloser) *ContextLogger {
	return &ContextLogger{
		GlobalLogger: newLogger(globalLoggerWriter),
	}
}

func newLogger(w io.WriteCloser) *log.Logger {
	return &log.Logger{
		Handler: NewHandler(w),
		Level:   log.InfoLevel,
	}
}

func (l *ContextLogger) AddLoggingContext(ctx string, w io.WriteCloser) {
	old, loaded := l.ContextLoggers.Swap(ctx, newLogger(w))
	if loaded {
		if h := handlerOf(old); h != nil {
			h.Close()
		}
	}
}

func (l *ContextLogger) RemoveLoggingContext(ctx string) {
	logger, ok := l.ContextLoggers.LoadAndDelete(ctx)
	if !ok {
		return
	}

	if h := handlerOf(logger); h != nil {
		h.Close()
	}
}

// SetLevel gives ctx a logger of its own, writing through the global
// logger's output, if it does not have one yet.
func (l *ContextLogger) SetLevel(ctx string, level log.Level) {
	l.ensureLogger(ctx).Level = level
}

func (l *ContextLogger) SetLevelFromString(ctx, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.SetLevel(ctx, level)
	return nil
}

func (l *ContextLogger) Level(ctx string) log.Level {
	if logger := l.loggerFor(ctx); logger != nil {
		return logger.Level
	}

	return l.GlobalLogger.Level
}

func (l *ContextLogger) SetOutput(ctx string, w io.WriteCloser) error {
	h := handlerOf(l.loggerFor(ctx))
	if h == nil {
		return fmt.Errorf("no such logging context %s", ctx)
	}

	h.SetOutput(w)
	return nil
}

func (l *ContextLogger) UsingCtx(ctx string) *log.Entry {
	logger := l.loggerFor(ctx)
	if logger == nil {
		logger = l.GlobalLogger
	}

	return logger.WithField("ctx", ctx)
}

func (l *ContextLogger) Global() *log.Entry {
	return l.UsingCtx(GlobalLoggerCtx)
}

func (l *ContextLogger) ensureLogger(ctx string) *log.Logger {
	if logger := l.loggerFor(ctx); logger != nil {
		return logger
	}

	derived := &log.Logger{
		Handler: NewHandler(globalWriter{h: handlerOf(l.GlobalLogger)}),
		Level:   l.GlobalLogger.Level,
	}
	logger, _ := l.ContextLoggers.LoadOrStore(ctx, derived)
	return logger.(*log.Logger)
}

// globalWriter writes through the global handler's current output and never
// closes it.
type globalWriter struct {
	h *Handler
}

func (w globalWriter) Write(p []byte) (int, error) {
	if w.h == nil {
		return len(p), nil
	}

	w.h.mu.Lock()
	defer w.h.mu.Unlock()
	return w.h.Writer.Write(p)
}

func (w globalWriter) Close() error {
	return nil
}

// loggerFor returns nil for a context that has no logger of its own.
func (l *ContextLogger) loggerFor(ctx string) *log.Logger {
	if ctx == GlobalLoggerCtx {
		return l.GlobalLogger
	}

	logger, ok := l.ContextLoggers.Load(ctx)
	if !ok {
		return nil
	}

	clogger, _ := logger.(*log.Logger)
	return clogger
}

func handlerOf(logger interface{}) *Handler {
	clogger, ok := logger.(*log.Logger)
	if !ok || clogger == nil {
		return nil
	}

	h, _ := clogger.Handler.(*Handler)
	return h
}
