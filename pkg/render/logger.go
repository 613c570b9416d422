package render

import (
	"go.uber.org/zap"

	"github.com/rlowe/pathtracer/pkg/core"
)

// ZapLogger adapts a *zap.SugaredLogger to core.Logger, grounded on the
// global zap logger idiom used elsewhere in the corpus (Init + package
// logger) but scoped to an instance instead of a package-level global so
// multiple renders in one process don't race over shared state.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a production zap logger (JSON, info level) wrapped as
// a core.Logger.
func NewLogger() (*ZapLogger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// NewDevelopmentLogger builds a human-readable console logger, useful
// for CLI runs (mirrors the corpus's console-output-during-development
// habit without dropping structured fields).
func NewDevelopmentLogger() (*ZapLogger, error) {
	base, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// Printf implements core.Logger.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Sync flushes any buffered log entries; call before process exit.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)
