package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_Disabled(t *testing.T) {
	logger, closer, err := setupLogging(false, filepath.Join(t.TempDir(), "x.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger.Printf("dropped")
}

func TestSetupLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "overworld.log")
	logger, closer, err := setupLogging(true, path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("scene enter: %s", "MenuScene")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(b)
	if !strings.HasPrefix(line, "[overworld] ") || !strings.Contains(line, "scene enter: MenuScene") {
		t.Fatalf("unexpected log line %q", line)
	}
}
