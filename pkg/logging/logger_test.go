package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_WritesJSONToConfiguredOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: "info", Output: buf})

	logger.Info().Str("locale", "de-de").Msg("test info message")

	output := buf.String()
	if !strings.Contains(output, "test info message") {
		t.Errorf("Expected output to contain message, got %q", output)
	}
	if !strings.Contains(output, `"locale":"de-de"`) {
		t.Errorf("Expected structured field in output, got %q", output)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: "warn", Output: buf})

	logger.Info().Msg("suppressed")
	logger.Warn().Msg("emitted")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("Info message should be filtered at warn level, got %q", output)
	}
	if !strings.Contains(output, "emitted") {
		t.Errorf("Warn message missing, got %q", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "info", expected: zerolog.InfoLevel},
		{input: "warn", expected: zerolog.WarnLevel},
		{input: "warning", expected: zerolog.WarnLevel},
		{input: "error", expected: zerolog.ErrorLevel},
		{input: "ERROR", expected: zerolog.ErrorLevel},
		{input: "unknown", expected: zerolog.InfoLevel},
		{input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_IncludesComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: "debug", Output: buf})

	logger := NewLogger("events-client")
	logger.Info().Msg("component test")

	if !strings.Contains(buf.String(), `"component":"events-client"`) {
		t.Errorf("Expected component field, got %q", buf.String())
	}
}
