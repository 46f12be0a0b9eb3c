package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const VerbosityOff = "off"

var ErrUnknownVerbosity = errors.New("unknown verbosity")

// Verbosity is a parsed verbosity setting. The zero value logs at info.
type Verbosity struct {
	Level zapcore.Level
	Off   bool
}

func ParseVerbosity(value string) (Verbosity, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == VerbosityOff {
		return Verbosity{Off: true}, nil
	}

	level, err := zapcore.ParseLevel(value)
	if err != nil || level > zapcore.ErrorLevel {
		return Verbosity{}, fmt.Errorf("%w: %q (want off, error, warn, info or debug)", ErrUnknownVerbosity, value)
	}
	return Verbosity{Level: level}, nil
}

func OpenLogFile(logFile string) (*os.File, error) {
	if logFile == "" {
		return nil, nil
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

// ApplyVerbosity sets base to log exactly at v and above, below or above
// the level base was built with. Off discards everything.
func ApplyVerbosity(base *zap.Logger, v Verbosity) *zap.Logger {
	if v.Off {
		return zap.NewNop()
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelCore{Core: core, level: v.Level}
	}))
}

// levelCore replaces the level check of the wrapped core. Accepted entries
// go straight to the wrapped core's Write.
type levelCore struct {
	zapcore.Core
	level zapcore.Level
}

func (c *levelCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *levelCore) Level() zapcore.Level {
	return c.level
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func AttachFileLogger(base *zap.Logger, file *os.File, v Verbosity) *zap.Logger {
	if file == nil || v.Off {
		return base
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), v.Level)
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}

// Setup builds loggers from the process base logger once the final
// verbosity and log file are known, and owns the files it opens.
type Setup struct {
	base *zap.Logger

	mu    sync.Mutex
	files []*os.File
}

func NewSetup(base *zap.Logger) *Setup {
	if base == nil {
		base = zap.NewNop()
	}
	return &Setup{base: base}
}

func (s *Setup) Logger(verbosity, logFile string) (*zap.Logger, error) {
	v, err := ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	logger := ApplyVerbosity(s.base, v)
	if v.Off {
		return logger, nil
	}

	file, err := OpenLogFile(logFile)
	if err != nil {
		return nil, err
	}
	if file != nil {
		s.mu.Lock()
		s.files = append(s.files, file)
		s.mu.Unlock()
	}

	return AttachFileLogger(logger, file, v), nil
}

func (s *Setup) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}
	s.files = nil
	return errors.Join(errs...)
}
