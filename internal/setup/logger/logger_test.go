package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
		{"invalid falls back to info", "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level, "json")
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	l := New("error", "console")
	if l.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("level = %v, want error", l.GetLevel())
	}
}
