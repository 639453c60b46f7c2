package state

import (
	"context"
	"testing"
)

func TestContextWithEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("expected non-nil LocalEnv")
	}
	if env.Uptime() < 0 {
		t.Fatal("expected non-negative uptime")
	}
}

func TestEnvFromContextPanicsWithoutEnv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when context has no LocalEnv")
		}
	}()
	EnvFromContext(context.Background())
}

func TestRedirectStdLogNoopWithoutLogger(t *testing.T) {
	env := newLocalEnv()
	env.RedirectStdLog()
	env.RestoreStdLog()
}
