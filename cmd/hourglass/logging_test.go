package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from a scratch directory and restores the logger
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	prev, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	log.Println("flip accepted")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "flip accepted") {
		t.Errorf("log file missing message:\n%s", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
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
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "hourglass-") {
			rotated = true
		}
	}
	if !rotated {
		t.Error("oversized log was not rotated")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log size = %d, want under %d", info.Size(), maxLogSize)
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("log output must not share the terminal")
	}
}
