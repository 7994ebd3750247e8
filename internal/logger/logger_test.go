package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARNING", slog.LevelWarn, false},
		{"Warn", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"always", LevelAlways, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadConfig) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrBadConfig", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, want %+v", cfg, DefaultConfig())
	}
	if cfg.FilePath != "logs/hearthplan.log" {
		t.Errorf("Default FilePath = %q, want %q", cfg.FilePath, "logs/hearthplan.log")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	content := `logging:
  level: DEBUG
  console_enabled: false
  console_format: json
  file_enabled: true
  file_path: test.log
  file_max_size_mb: 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", cfg.Level, "DEBUG")
	}
	if cfg.ConsoleEnabled {
		t.Error("ConsoleEnabled = true, want false")
	}
	if cfg.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q", cfg.ConsoleFormat, "json")
	}
	if !cfg.FileEnabled {
		t.Error("FileEnabled = false, want true")
	}
	if cfg.FilePath != "test.log" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "test.log")
	}
	if cfg.FileMaxSizeMB != 20 {
		t.Errorf("FileMaxSizeMB = %d, want %d", cfg.FileMaxSizeMB, 20)
	}
	// Keys absent from the file keep their defaults.
	if cfg.FileMaxBackups != 5 || cfg.FileFormat != "text" {
		t.Errorf("FileMaxBackups, FileFormat = %d, %q, want 5, text", cfg.FileMaxBackups, cfg.FileFormat)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("logging: [level"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrBadConfig) {
		t.Errorf("LoadConfig(malformed) error = %v, want ErrBadConfig", err)
	}
}

func TestEnvVarOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_CONSOLE_FORMAT", "json")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/custom/path.log")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Level != "ERROR" {
		t.Errorf("Level = %q, want %q (from env var)", cfg.Level, "ERROR")
	}
	if cfg.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q (from env var)", cfg.ConsoleFormat, "json")
	}
	if !cfg.FileEnabled {
		t.Error("FileEnabled = false, want true (from env var)")
	}
	if cfg.FilePath != "/custom/path.log" {
		t.Errorf("FilePath = %q, want %q (from env var)", cfg.FilePath, "/custom/path.log")
	}
}

func TestBuildText(t *testing.T) {
	var buf bytes.Buffer
	l, err := Build(DefaultConfig(), &buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	Use(l)
	t.Cleanup(func() { Use(nil) })

	Info("Test message", "key", "value")
	Debug("This should not appear")

	out := buf.String()
	if !strings.Contains(out, "Test message") {
		t.Errorf("Output missing INFO message: %s", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("Output missing structured field: %s", out)
	}
	if strings.Contains(out, "This should not appear") {
		t.Errorf("Output contains DEBUG message when level is INFO: %s", out)
	}
}

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	l, err := Build(cfg, &buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	Use(l)
	t.Cleanup(func() { Use(nil) })

	Info("JSON test", "field1", "value1", "field2", 42)

	out := buf.String()
	for _, want := range []string{`"msg":"JSON test"`, `"field1":"value1"`, `"field2":42`} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %s: %s", want, out)
		}
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"level", func(c *Config) { c.Level = "loud" }},
		{"console format", func(c *Config) { c.ConsoleFormat = "xml" }},
		{"file format", func(c *Config) {
			c.FileEnabled = true
			c.FileFormat = "csv"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			if _, err := Build(cfg, &bytes.Buffer{}); !errors.Is(err, ErrBadConfig) {
				t.Errorf("Build error = %v, want ErrBadConfig", err)
			}
		})
	}
}

func TestBuildNoOutputs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	l, err := Build(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if l.Enabled(context.Background(), LevelAlways) {
		t.Error("logger with no outputs should discard everything")
	}
}

func TestAlwaysBypassesLogLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "ERROR"
	l, err := Build(cfg, &buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	Use(l)
	t.Cleanup(func() { Use(nil) })

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")
	Always("Always message")

	out := buf.String()
	for _, absent := range []string{"Debug message", "Info message", "Warn message"} {
		if strings.Contains(out, absent) {
			t.Errorf("%q appeared when level is ERROR", absent)
		}
	}
	if !strings.Contains(out, "Error message") {
		t.Error("ERROR message missing from output")
	}
	if !strings.Contains(out, "Always message") {
		t.Error("ALWAYS message missing from output")
	}
	if !strings.Contains(out, "level=ALWAYS") {
		t.Errorf("ALWAYS level not formatted correctly: %s", out)
	}
}

func TestFileOutput(t *testing.T) {
	var console bytes.Buffer
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = filepath.Join(t.TempDir(), "run.log")
	l, err := Build(cfg, &console)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	l.Info("both outputs", "seed", 42)

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for name, out := range map[string]string{"console": console.String(), "file": string(data)} {
		if !strings.Contains(out, "both outputs") || !strings.Contains(out, "seed=42") {
			t.Errorf("%s output = %q, want message with seed=42", name, out)
		}
	}
}

func TestMultiHandler(t *testing.T) {
	var info, errs bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	l := slog.New(h).With("plan", "building_1")

	l.Info("placed room")
	l.Error("overlap")

	if !strings.Contains(info.String(), "placed room") || !strings.Contains(info.String(), "overlap") {
		t.Errorf("INFO handler output = %q, want both records", info.String())
	}
	if strings.Contains(errs.String(), "placed room") {
		t.Errorf("ERROR handler received an INFO record: %q", errs.String())
	}
	for name, out := range map[string]string{"info": info.String(), "error": errs.String()} {
		if !strings.Contains(out, "plan=building_1") {
			t.Errorf("%s handler missing attribute: %q", name, out)
		}
	}
}

func TestNilLogger(t *testing.T) {
	Use(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging with nil logger caused panic: %v", r)
		}
	}()

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
	Always("always")
}
