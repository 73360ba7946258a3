// Package log builds the slog.Logger used by the commands and the plain
// line loggers for touch events and stream frames.
//
// Without a log file, records below error go to stdout and errors to
// stderr, so stderr can be redirected on its own.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below Debug and also turns on the touch trace.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter passes only the levels accepted by pass to h.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// Options mirrors the --log.* flags.
type Options struct {
	Level     string
	File      string
	TraceFile string
	FrameFile string
}

// Setup bundles everything built from Options.
type Setup struct {
	Logger *slog.Logger
	Touch  *TouchTrace
	Frames *FrameDump

	closers []io.Closer
}

// Close flushes and closes any files opened by New.
func (s *Setup) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

func openTruncate(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
}

// New builds the logger and the optional trace writers. The touch trace
// goes to TraceFile, or to stdout when the level is trace; otherwise it is
// a no-op. Frame dumps are written only when FrameFile is set.
func New(opts Options) (*Setup, error) {
	level := ParseLevel(opts.Level)
	s := &Setup{}
	var handlers []slog.Handler

	if opts.File == "" {
		stdout := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: stdout})

		stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: stderr})
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		f, err := openTruncate(opts.File)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	s.Logger = slog.New(MultiHandler{hs: handlers})

	var traceW io.Writer
	switch {
	case opts.TraceFile != "":
		f, err := openTruncate(opts.TraceFile)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.closers = append(s.closers, f)
		traceW = f
	case level <= LevelTrace:
		traceW = os.Stdout
	}
	s.Touch = NewTouchTrace(traceW)

	var frameW io.Writer
	if opts.FrameFile != "" {
		f, err := openTruncate(opts.FrameFile)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.closers = append(s.closers, f)
		frameW = f
	}
	s.Frames = NewFrameDump(frameW)

	return s, nil
}
