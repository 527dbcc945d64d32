package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/config"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editcore.log")
	log, closeFn, err := New(config.LoggingConfig{Level: "debug", Format: "console", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("transaction committed", zap.String("name", "insert_char"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "transaction committed") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editcore.log")
	log, closeFn, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("filtered")
	log.Info("dispatched", zap.String("op", "move_left"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one entry above debug, got %d: %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["level"] != "info" || entry["op"] != "move_left" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNewStderr(t *testing.T) {
	log, closeFn, err := New(config.Default().Logging)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if log.Core().Enabled(zap.DebugLevel) {
		t.Error("default level should not enable debug")
	}
}
