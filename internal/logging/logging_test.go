package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf}).Info("probe done", "platform", "github")

		var rec map[string]any
		if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
			t.Fatalf("not JSON: %v (%q)", err, buf.String())
		}
		if rec["msg"] != "probe done" || rec["platform"] != "github" {
			t.Errorf("record = %v", rec)
		}
	})

	t.Run("text and unknown formats", func(t *testing.T) {
		for _, f := range []Format{FormatText, "xml"} {
			var buf bytes.Buffer
			New(Config{Level: slog.LevelInfo, Format: f, Output: &buf}).Info("probe done")
			if !strings.Contains(buf.String(), "INFO  probe done") {
				t.Errorf("format %q: got %q", f, buf.String())
			}
		}
	})

	t.Run("level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: slog.LevelWarn, Output: &buf})
		logger.Info("hidden")
		logger.Warn("shown")
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("file tee", func(t *testing.T) {
		var term, file bytes.Buffer
		New(Config{Level: slog.LevelInfo, Output: &term, File: &file}).Info("probe done", "platform", "telegram")

		if !strings.Contains(term.String(), "platform=telegram") {
			t.Errorf("terminal = %q", term.String())
		}
		if !strings.Contains(file.String(), `"platform":"telegram"`) {
			t.Errorf("file = %q, want JSON", file.String())
		}
	})
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
	logger.Error("nothing")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if FromContext(t.Context()) != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("ForTest logger should capture trace records")
	}
	logger.Log(t.Context(), LevelTrace, "visible with -v")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	w := &testWriter{t: t}
	n, err := w.Write([]byte("line\n"))
	if err != nil || n != 5 {
		t.Errorf("Write() = %d, %v; want 5, nil", n, err)
	}
}
