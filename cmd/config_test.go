package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "drill", configBaseName)
	assert.Equal(t, "drill.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "tasks", tasksFlagName)
	assert.Equal(t, "hidden", hiddenFlagName)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "suite", suiteFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.suite", suiteConfigKey)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.timeout", runTimeoutConfigKey)
	assert.Equal(t, "history.limit", historyLimitKey)
	assert.Equal(t, "tasks", defaultTasksDir)
	assert.Equal(t, ".drill-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, 10*time.Second, defaultRunTimeout)
	assert.Equal(t, 10, defaultHistoryLimit)
	assert.Equal(t, "history.db", historyDBName)
	assert.Equal(t, "DRILL", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
