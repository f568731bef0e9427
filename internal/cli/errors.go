package cli

// This file defines error handling utilities for the CLI, including:
//   - Sentinel errors used as bases for apperr errors raised by commands
//   - Structured error logging
//   - Debug mode management for error output

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"apperror/pkg/apperr"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError writes structured error logs.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// Sentinel errors for CLI operations. Commands report failures as apperr
// errors with one of these as base, so callers can match with errors.Is.
var (
	ErrUnknownKey        = errors.New("unknown message key")
	ErrTooManyArguments  = errors.New("too many arguments for message key")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrRenderFailed      = errors.New("failed to render message")
	ErrExportFailed      = errors.New("failed to export catalog")
)

// withBase attaches base to err when err is an *apperr.Error.
func withBase(err error, base error) error {
	if appErr, ok := err.(*apperr.Error); ok {
		return appErr.WithBase(base)
	}
	return errors.Join(base, err)
}

// logStructuredError logs an error with structured fields.
// Only logs when debug mode is enabled (via --debug flag).
//
// apperr errors are logged with:
// - error.kind: "ApplicationException"
// - error.key: "MSG_INVALID_VALUE"
// - error.message: the rendered message
// - error.cause: the attached cause, if any
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		fields := []zap.Field{
			zap.String("error.kind", string(appErr.Kind())),
			zap.String("error.message", appErr.Message()),
			zap.Error(err),
		}
		if key := appErr.Key(); key != nil {
			fields = append(fields, zap.String("error.key", key.String()))
		}
		if cause := appErr.Cause(); cause != nil {
			fields = append(fields, zap.NamedError("error.cause", cause))
		}
		logger.Error(msg, fields...)
	} else {
		logger.Error(msg, zap.Error(err))
	}
}
