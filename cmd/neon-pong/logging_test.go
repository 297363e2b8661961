package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	prev := log.Writer()
	defer log.SetOutput(prev)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLogging_WritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	prev := log.Writer()
	defer log.SetOutput(prev)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("log output must not be the terminal")
	}

	log.Println("status idle -> playing")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	prev := log.Writer()
	defer log.SetOutput(prev)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files = %d, want 1", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log size = %d", info.Size())
	}
}
