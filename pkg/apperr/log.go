package apperr

import (
	"sync"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger receives a debug record for every error built from a catalog.
type Logger interface {
	DebugEnabled() bool
	Debug(msg string, cause error)
}

var (
	logger   Logger = nopLogger{}
	loggerMu sync.RWMutex
)

// SetLogger installs the process-wide logger used by catalogs loaded without
// WithLogger. A nil logger disables tracing.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func currentLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// logConstructed emits the message of e at debug level. A panicking logger is
// recovered; logging never affects construction.
func logConstructed(l Logger, e *Error) {
	if l == nil {
		l = currentLogger()
	}
	defer func() {
		_ = recover()
	}()
	if !l.DebugEnabled() {
		return
	}
	l.Debug(e.Error(), e.Cause())
}

type nopLogger struct{}

func (nopLogger) DebugEnabled() bool  { return false }
func (nopLogger) Debug(string, error) {}

// ZapLogger adapts a zap logger. Debug records carry the cause under
// "error.cause".
func ZapLogger(l *zap.Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return zapLogger{l: l}
}

type zapLogger struct {
	l *zap.Logger
}

func (z zapLogger) DebugEnabled() bool {
	return z.l.Core().Enabled(zapcore.DebugLevel)
}

func (z zapLogger) Debug(msg string, cause error) {
	if cause != nil {
		z.l.Debug(msg, zap.NamedError("error.cause", cause))
		return
	}
	z.l.Debug(msg)
}

// LogrLogger adapts a logr logger. Records are written at verbosity 1.
func LogrLogger(l logr.Logger) Logger {
	return logrLogger{l: l.V(1)}
}

type logrLogger struct {
	l logr.Logger
}

func (g logrLogger) DebugEnabled() bool {
	return g.l.Enabled()
}

func (g logrLogger) Debug(msg string, cause error) {
	if cause != nil {
		g.l.Info(msg, "error.cause", cause.Error())
		return
	}
	g.l.Info(msg)
}
