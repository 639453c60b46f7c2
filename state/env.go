// Package state defines shared program state: configuration, logger and
// command-line flags threaded through a context.Context for the lifetime of
// one CLI invocation.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"screenplaydoc/config"
)

type envKey struct{}

// LocalEnv keeps everything the program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	// Overwrite is set from --overwrite and read by the parse/report/export
	// subcommands. OutputDir is not set or read by any subcommand; they take
	// their destination from the command line arguments.
	Overwrite bool
	OutputDir string

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// EnvFromContext retrieves the LocalEnv a prior ContextWithEnv call stashed.
func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

// ContextWithEnv returns a child context carrying a fresh LocalEnv.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Uptime reports how long this LocalEnv has existed.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog routes the standard library "log" package through zap, so
// any stray log.Print in a third-party dependency lands in the same sinks.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

// RestoreStdLog undoes RedirectStdLog and flushes the logger.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
