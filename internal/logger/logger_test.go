package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
}

func TestBuilder_JSONToConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{LogLevel: "debug", LogFormat: "json"}

	l, err := NewLoggerBuilder().WithConsoleOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("component", "Test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "Test", entry["component"])
	assert.Equal(t, zerolog.DebugLevel, l.Config().Level)
}

func TestBuilder_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "warn", LogFormat: "json"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.GetZerolog().Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestBuilder_InvalidLevel(t *testing.T) {
	_, err := NewLoggerBuilder().WithConfig(config.LogConfig{LogLevel: "loud"}).Build()

	require.Error(t, err)
	var vErr *errorwrapper.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "log_level", vErr.Field)
}

func TestBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "irdiff.log")
	cfg := config.LogConfig{LogLevel: "info", LogFormat: "json", LogFile: logFile}

	l, err := NewLoggerBuilder().WithConsoleOutput(&bytes.Buffer{}).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("to file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(" text "))
	assert.Equal(t, FormatConsole, ParseFormat(""))
	assert.Equal(t, FormatConsole, ParseFormat("fancy"))
	assert.Equal(t, "console", FormatConsole.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{" Debug ", zerolog.DebugLevel},
		{"WARNING", zerolog.WarnLevel},
		{"warn", zerolog.WarnLevel},
		{"trace", zerolog.TraceLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	var vErr *errorwrapper.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "loud", vErr.Value)
}

func TestBuilder_ConsoleFormatWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "info", LogFormat: "console"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Str("component", "Orchestrator").Msg("Batch finished")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "Batch finished")
	assert.Contains(t, out, "component=Orchestrator")
	assert.NotContains(t, out, "\x1b[", "colour codes on a non-terminal writer")
}

func TestBuilder_TextFileForConsoleFormat(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "irdiff.log")
	cfg := config.LogConfig{LogLevel: "info", LogFormat: "console", LogFile: logFile}

	l, err := NewLoggerBuilder().WithConsoleOutput(&bytes.Buffer{}).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("plain line")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "plain line")
	assert.NotContains(t, line, "\x1b[")
	assert.False(t, json.Valid(data), "file sink should not be JSON for console format")
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestConfigConverter_Defaults(t *testing.T) {
	lc, err := NewConfigConverter().ConvertConfig(config.LogConfig{})
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, lc.Level)
	assert.False(t, lc.EnableFile)
	assert.Equal(t, config.DefaultMaxLogSizeMB, lc.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, lc.MaxBackups)
}
