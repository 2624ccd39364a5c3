// ABOUTME: Tests for the TUI debug logger
// ABOUTME: Validates file creation, disabled logging and error formatting

package debuglog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	if err := Init(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	Log("compare cpu=%q", "AMD EPYC 9654")
	Error("compare", errors.New("connection refused"))
	Error("ignored", nil)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `compare cpu="AMD EPYC 9654"`) {
		t.Errorf("expected log line, got %q", content)
	}
	if !strings.Contains(content, "ERROR [compare]: connection refused") {
		t.Errorf("expected error line, got %q", content)
	}
	if strings.Contains(content, "ignored") {
		t.Errorf("expected nil error to be skipped, got %q", content)
	}
	if lines := strings.Count(content, "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}

func TestInitEmptyPathDisables(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer Close()

	// Must not panic without a file
	Log("nothing %d", 1)
}

func TestLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	Close()

	Log("after close")

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("expected empty log after close, got %q", data)
	}
}
