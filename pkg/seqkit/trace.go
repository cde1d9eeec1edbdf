package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/cursor"
)

// Trace passes the sequence through unchanged, while logging when a traversal starts and when it is exhausted.
// It is meant for debugging pipelines, so it logs on debug level by default.
func Trace[T any, C cursor.Cursor[T]](ctx context.Context, c C, opts ...TraceOption) *TraceSeq[T, C] {
	var config TraceConfig
	for _, opt := range opts {
		opt.Configure(&config)
	}
	config.Name = zerokit.Coalesce(config.Name, "sequence")
	config.Level = zerokit.Coalesce(config.Level, logging.LevelDebug)
	return &TraceSeq[T, C]{up: c, ctx: ctx, config: config}
}

type TraceConfig struct {
	// Name identifies the traced sequence in the log entries.
	Name string
	// Logger is used for logging, when nil, the package level logger is used.
	Logger *logging.Logger
	// Level is the logging level of the trace entries.
	Level logging.Level
}

func (c TraceConfig) Configure(t *TraceConfig) {
	if c.Name != "" {
		t.Name = c.Name
	}
	if c.Logger != nil {
		t.Logger = c.Logger
	}
	if c.Level != "" {
		t.Level = c.Level
	}
}

type TraceOption interface {
	option.Option[TraceConfig]
}

var _ TraceOption = TraceConfig{}

func TraceName(name string) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Name = name })
}

func TraceLogger(l *logging.Logger) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Logger = l })
}

func TraceLevel(level logging.Level) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Level = level })
}

type TraceSeq[T any, C cursor.Cursor[T]] struct {
	up     C
	ctx    context.Context
	config TraceConfig
	count  int
	done   bool
}

func (s *TraceSeq[T, C]) First() *T {
	s.count, s.done = 0, false
	s.log("sequence started")
	return s.observe(s.up.First())
}

func (s *TraceSeq[T, C]) Next() *T {
	if s.done {
		return nil
	}
	return s.observe(s.up.Next())
}

func (s *TraceSeq[T, C]) Len() (int, bool) {
	return lenOf(s.up)
}

func (s *TraceSeq[T, C]) observe(v *T) *T {
	if v != nil {
		s.count++
		return v
	}
	s.done = true
	s.log("sequence exhausted", logging.Field("count", s.count))
	return nil
}

func (s *TraceSeq[T, C]) log(msg string, ds ...logging.Detail) {
	ds = append(ds, logging.Field("sequence", s.config.Name))
	if s.config.Logger != nil {
		s.config.Logger.Log(s.ctx, s.config.Level, msg, ds...)
		return
	}
	switch s.config.Level {
	case logging.LevelInfo:
		logger.Info(s.ctx, msg, ds...)
	case logging.LevelWarn:
		logger.Warn(s.ctx, msg, ds...)
	case logging.LevelError, logging.LevelFatal:
		logger.Error(s.ctx, msg, ds...)
	default:
		logger.Debug(s.ctx, msg, ds...)
	}
}
