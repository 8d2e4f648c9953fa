package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"loud", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			if got := log.Level(); got != tt.want {
				t.Errorf("level = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewUnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	New("loud", &buf)
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)
	log.Debug("requesting current weather")
	if !strings.Contains(buf.String(), "requesting current weather") || !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("output = %q", buf.String())
	}
}
