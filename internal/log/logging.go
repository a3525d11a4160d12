// Package log builds the slog.Logger and the blob dump writer used by the
// generator.
//
// Without a log file, records below error level go to stdout and errors go
// to stderr, next to the diagnostics the shader compilers print there. With
// a log file, the console handler writes everything to stderr and the file
// receives a copy.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is below Debug; at this level compiled blobs are hex dumped to
// stdout unless a dump file is configured.
const LevelTrace slog.Level = -8

// Config is the logging section of the command line.
type Config struct {
	Level    string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"SHADEREMBED_LOG_LEVEL"`
	File     string `help:"Also write logs to this file" env:"SHADEREMBED_LOG_FILE"`
	DumpFile string `help:"Write a hex dump of every compiled shader binary to this file" env:"SHADEREMBED_LOG_DUMP_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to several handlers.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelFilter passes only the levels accepted by pass to h.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// NewHandler returns the console handler set for level, writing to stdout
// and stderr. Exposed for tests, which pass buffers.
func NewHandler(level slog.Level, stdout, stderr io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	return multiHandler{
		levelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: slog.NewTextHandler(stdout, opts)},
		levelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: slog.NewTextHandler(stderr, opts)},
	}
}

// Setup builds the logger and blob dumper described by cfg. The returned
// closers must be closed on exit.
func Setup(cfg Config) (*slog.Logger, BlobDumper, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	var handler slog.Handler
	if cfg.File == "" {
		handler = NewHandler(level, os.Stdout, os.Stderr)
	} else {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, err
		}
		closers = append(closers, f)
		handler = multiHandler{
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		}
	}
	logger := slog.New(handler)

	var dumper BlobDumper
	switch {
	case cfg.DumpFile != "":
		f, err := os.OpenFile(cfg.DumpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			closeAll()
			return nil, nil, nil, err
		}
		closers = append(closers, f)
		dumper = NewBlobDumper(f)
	case level <= LevelTrace:
		dumper = NewBlobDumper(os.Stdout)
	default:
		dumper = NewBlobDumper(nil)
	}
	return logger, dumper, closers, nil
}
