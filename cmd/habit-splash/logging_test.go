package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var rotatedName = regexp.MustCompile(`^habit-splash-\d{8}-\d{6}\.log$`)

// inTempDir runs the test from an empty directory and restores the standard logger afterwards
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	flags := log.Flags()
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		log.SetFlags(flags)
	})
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected discarded output, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Logs directory should not be created without debug")
	}
}

func TestSetupLoggingWritesDebugFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug")
	}
	defer f.Close()

	log.Printf("splash: phase %s", "pulse")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "splash: phase pulse") {
		t.Errorf("Log line missing, file holds %q", data)
	}
}

func TestSetupLoggingAppendsUnderLimit(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	defer f.Close()
	log.Print("later run")

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected no rotation under the limit, found %d files", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "earlier run\n") || !strings.Contains(string(data), "later run") {
		t.Errorf("Expected appended log, got %q", data)
	}
}

func TestSetupLoggingRotatesOversizedLog(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 || !rotatedName.MatchString(rotated[0]) {
		t.Fatalf("Expected one habit-splash-<timestamp>.log, got %v", rotated)
	}

	old, err := os.Stat(filepath.Join(logDir, rotated[0]))
	if err != nil {
		t.Fatal(err)
	}
	if old.Size() != maxLogSize+1 {
		t.Errorf("Rotated log should keep the old content, size %d", old.Size())
	}
	fresh, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Size() != 0 {
		t.Errorf("Expected a fresh log after rotation, size %d", fresh.Size())
	}
}
