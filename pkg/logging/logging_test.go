package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "amake", "amake.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "state")
	t.Setenv("XDG_STATE_HOME", stateDir)

	got := getLogFilePath()
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Join(stateDir, "amake", "amake.log"), got)
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)
	buf.Reset()

	logger := GetLogger("pipeline.executor")
	logger.Info().Msg("stage done")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pipeline.executor", entry["component"])
	assert.Equal(t, "stage done", entry["message"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)
	buf.Reset()

	logger := WithFields(map[string]interface{}{"stage": "join", "position": 2})
	logger.Info().Msg("fields")

	out := buf.String()
	assert.Contains(t, out, `"stage":"join"`)
	assert.Contains(t, out, `"position":2`)
}

func TestLevelsFilter(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithOutput(0, &buf)
	buf.Reset()

	logger := GetLogger("test")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	LogCommand("make", []string{"make", "all"})
	assert.Empty(t, buf.String())

	SetupLoggerWithOutput(2, &buf)
	buf.Reset()
	done := LogOperationStart(GetLogger("test"), "process")
	done()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"operation":"process"`)
}
