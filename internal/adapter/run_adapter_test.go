package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	m "drill.dev/pkg/drill/internal/model"
)

// writeScript drops a small shell script into a temp dir so the run adapter
// can be exercised without compiling anything first.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLocalRunAdapter_Run_CapturesOutput(t *testing.T) {
	adapter := NewLocalRunAdapter()

	bin := writeScript(t, "echoer", "cat\n")

	execution, err := adapter.Run(context.Background(), m.Path(bin), []byte("1200\n"), time.Second)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if execution.Stdout != "1200\n" {
		t.Fatalf("Run() stdout = %q, want %q", execution.Stdout, "1200\n")
	}

	if execution.ExitCode != 0 || execution.TimedOut {
		t.Fatalf("Run() exit = %d timedOut = %v, want clean exit", execution.ExitCode, execution.TimedOut)
	}
}

func TestLocalRunAdapter_Run_NonZeroExit(t *testing.T) {
	adapter := NewLocalRunAdapter()

	bin := writeScript(t, "failer", "echo boom >&2\nexit 3\n")

	execution, err := adapter.Run(context.Background(), m.Path(bin), nil, time.Second)
	if err != nil {
		t.Fatalf("Run() error = %v, non-zero exit should be data, not an error", err)
	}

	if execution.ExitCode != 3 {
		t.Fatalf("Run() exit = %d, want 3", execution.ExitCode)
	}

	if !strings.Contains(execution.Stderr, "boom") {
		t.Fatalf("Run() stderr = %q, want it to contain %q", execution.Stderr, "boom")
	}
}

func TestLocalRunAdapter_Run_Timeout(t *testing.T) {
	adapter := NewLocalRunAdapter()

	bin := writeScript(t, "sleeper", "sleep 5\n")

	execution, err := adapter.Run(context.Background(), m.Path(bin), nil, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Run() error = %v, timeout should be data, not an error", err)
	}

	if !execution.TimedOut {
		t.Fatalf("Run() timedOut = false, want true")
	}
}

func TestLocalRunAdapter_Run_MissingBinary(t *testing.T) {
	adapter := NewLocalRunAdapter()

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	if _, err := adapter.Run(context.Background(), m.Path(missing), nil, time.Second); err == nil {
		t.Fatalf("Run() expected error for missing binary, got nil")
	}
}

func TestLocalRunAdapter_Run_Canceled(t *testing.T) {
	adapter := NewLocalRunAdapter()

	bin := writeScript(t, "sleeper", "sleep 5\n")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	if _, err := adapter.Run(ctx, m.Path(bin), nil, 10*time.Second); err == nil {
		t.Fatalf("Run() expected error after context cancel, got nil")
	}
}
