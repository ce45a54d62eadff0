package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

func withStateHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			withStateHome(t, tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "portfs", "portfs.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	tempDir := t.TempDir()
	withStateHome(t, tempDir)

	got, err := getLogFilePath()
	if err != nil {
		t.Fatalf("getLogFilePath() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("getLogFilePath() returned relative path: %s", got)
	}
	want := filepath.ToSlash(filepath.Join(tempDir, "portfs", "portfs.log"))
	if !strings.HasSuffix(filepath.ToSlash(got), want) {
		t.Errorf("getLogFilePath() = %s, want %s", got, want)
	}
	if info, err := os.Stat(filepath.Dir(got)); err != nil || !info.IsDir() {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLevelFor(t *testing.T) {
	if LevelFor(-1) != zerolog.TraceLevel {
		t.Errorf("negative verbosity should not silence logging")
	}
	if LevelFor(0) != zerolog.WarnLevel {
		t.Errorf("LevelFor(0) = %v", LevelFor(0))
	}
}
