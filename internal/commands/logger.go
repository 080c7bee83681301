package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/investment-projector/internal/calculation"
)

// slogLogger adapts log/slog to the calculation.Logger interface
type slogLogger struct {
	l *slog.Logger
}

func newLogger(w io.Writer, verbose bool) calculation.Logger {
	if !verbose {
		return calculation.NopLogger{}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slogLogger{l: slog.New(h)}
}

func (s slogLogger) logf(level slog.Level, format string, args ...any) {
	s.l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func (s slogLogger) Debugf(format string, args ...any) { s.logf(slog.LevelDebug, format, args...) }
func (s slogLogger) Infof(format string, args ...any)  { s.logf(slog.LevelInfo, format, args...) }
func (s slogLogger) Warnf(format string, args ...any)  { s.logf(slog.LevelWarn, format, args...) }
func (s slogLogger) Errorf(format string, args ...any) { s.logf(slog.LevelError, format, args...) }
