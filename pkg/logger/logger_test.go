package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe swaps in an observed logger at level and restores the original
// when the test ends.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	core, recorded := observer.New(level)
	SetLogger(zap.New(core))
	return recorded
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"info", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDebugLogging(t *testing.T) {
	recorded := observe(t, zapcore.DebugLevel)

	Debug("insert", "slot", 3)

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(logs))
	}
	entry := logs[0]
	if entry.Level != zapcore.DebugLevel {
		t.Errorf("Expected debug level, got %v", entry.Level)
	}
	if entry.Message != "insert" {
		t.Errorf("Expected 'insert', got '%s'", entry.Message)
	}
	if len(entry.Context) != 1 || entry.Context[0].Key != "slot" || entry.Context[0].Integer != 3 {
		t.Errorf("Expected context field 'slot'=3, got %v", entry.Context)
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		logFunc   func(string, ...interface{})
		shouldLog bool
	}{
		{"Debug with Info level", zapcore.InfoLevel, Debug, false},
		{"Info with Info level", zapcore.InfoLevel, Info, true},
		{"Warn with Info level", zapcore.InfoLevel, Warn, true},
		{"Error with Info level", zapcore.InfoLevel, Error, true},
		{"Debug with Debug level", zapcore.DebugLevel, Debug, true},
		{"Info with Warn level", zapcore.WarnLevel, Info, false},
		{"Error with Warn level", zapcore.WarnLevel, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorded := observe(t, tt.level)

			tt.logFunc("test message")

			n := recorded.Len()
			if tt.shouldLog && n == 0 {
				t.Errorf("Expected log to be recorded, but none found")
			}
			if !tt.shouldLog && n > 0 {
				t.Errorf("Expected no log to be recorded, but found %d", n)
			}
		})
	}
}

func TestWithMethod(t *testing.T) {
	recorded := observe(t, zapcore.InfoLevel)

	With("component", "store").With("slots", 16).Info("table ready")

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(logs))
	}
	fields := logs[0].ContextMap()
	if fields["component"] != "store" {
		t.Errorf("Expected component 'store', got '%v'", fields["component"])
	}
	if fields["slots"] != int64(16) {
		t.Errorf("Expected slots 16, got '%v'", fields["slots"])
	}
}

func TestInitLoggerToFile(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	path := filepath.Join(t.TempDir(), "chaintable.log")
	if err := InitLogger(WarnLevel, path); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	Info("dropped")
	Warn("kept", "key", "k")
	if err := Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var line map[string]interface{}
	if err := json.Unmarshal(data, &line); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", data, err)
	}
	if line["msg"] != "kept" || line["key"] != "k" || line["level"] != "WARN" {
		t.Errorf("unexpected entry %v", line)
	}
}

func TestInitLoggerBadPath(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	path := filepath.Join(t.TempDir(), "missing", "chaintable.log")
	if err := InitLogger(InfoLevel, path); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if Logger() != original {
		t.Error("failed InitLogger must keep the previous logger")
	}
}

func TestInitLoggerClosesReplacedFile(t *testing.T) {
	original := Logger()
	t.Cleanup(func() { SetLogger(original) })

	dir := t.TempDir()
	if err := InitLogger(InfoLevel, filepath.Join(dir, "first.log")); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	first := logFile
	if first == nil {
		t.Fatal("expected the log file to be tracked")
	}

	if err := InitLogger(InfoLevel, filepath.Join(dir, "second.log")); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if _, err := first.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("first log file still open: %v", err)
	}
	second := logFile
	if second == first {
		t.Fatal("expected a new log file")
	}

	// a failed init keeps the current file open
	if err := InitLogger(InfoLevel, filepath.Join(dir, "missing", "third.log")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if logFile != second {
		t.Error("failed InitLogger must keep the current log file")
	}

	if err := InitLogger(InfoLevel, ""); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if logFile != nil {
		t.Error("stdout logger must not track a file")
	}
	if _, err := second.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second log file still open: %v", err)
	}
}
