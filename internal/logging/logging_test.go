package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelWarn},
		{in: "warn", want: slog.LevelWarn},
		{in: "WARNING", want: slog.LevelWarn},
		{in: " debug ", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, LevelWarn)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("resolved node", "node", "gw")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at warn level: %q", buf.String())
	}

	logger.Warn("global keepalive ignored")
	if !strings.Contains(buf.String(), "global keepalive ignored") {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	if err := Configure("loud"); err == nil {
		t.Fatal("Configure() expected error for unknown level")
	}
}
