package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "drill.dev/pkg/drill/internal/model"
)

// These tests compile the real task directories shipped in the repo rather
// than embedding Go source in strings.

func TestLocalBuildAdapter_Build_Success(t *testing.T) {
	adapter := NewLocalBuildAdapter()

	dir := filepath.Join("..", "..", "tasks", "reverse-digits")
	out := filepath.Join(t.TempDir(), "solution")

	buildOut, err := adapter.Build(context.Background(), m.Path(dir), m.Path(out))
	if err != nil {
		t.Fatalf("Build() error = %v, output = %s", err, buildOut)
	}

	if _, statErr := os.Stat(out); statErr != nil {
		t.Fatalf("Build() did not produce a binary at %s: %v", out, statErr)
	}
}

func TestLocalBuildAdapter_Build_Failure(t *testing.T) {
	adapter := NewLocalBuildAdapter()

	dir := t.TempDir()

	src := "package main\n\nfunc main() { undefined() }\n"
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module broken\n\ngo 1.25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "solution")

	buildOut, err := adapter.Build(context.Background(), m.Path(dir), m.Path(out))
	if err == nil {
		t.Fatalf("Build() expected error for broken source, got nil (output=%s)", buildOut)
	}

	if buildOut == "" {
		t.Fatalf("Build() expected compiler diagnostics for failure, got empty string")
	}
}
