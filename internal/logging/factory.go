package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend selects the logging implementation.
type Backend string

const (
	BackendZap  Backend = "zap"
	BackendSlog Backend = "slog"
)

// Options configures New.
type Options struct {
	Backend Backend
	// Level is one of debug, info, warn, error.
	Level string
	// Path is the log file; it is created or appended to.
	Path string
}

// New opens the log file and builds a logger for opts. The returned closer
// flushes and closes the file.
func New(opts Options) (Logger, io.Closer, error) {
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l, closer, err := NewWriter(opts.Backend, opts.Level, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return l, closerFunc(func() error {
		_ = closer.Close()
		return f.Close()
	}), nil
}

// NewWriter builds a logger of the given backend and level writing JSON lines to w.
func NewWriter(backend Backend, level string, w io.Writer) (Logger, io.Closer, error) {
	switch backend {
	case BackendZap, "":
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
		zl := NewZapLogger(zap.New(core))
		return zl, closerFunc(func() error {
			_ = zl.Sync()
			return nil
		}), nil

	case BackendSlog:
		lvl, err := slogLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), closerFunc(func() error { return nil }), nil

	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return NewZapLogger(zap.NewNop())
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
