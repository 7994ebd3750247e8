package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig logs INFO and above as text to the console only.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FilePath:       "logs/hearthplan.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// fileConfig mirrors Config with pointers so keys missing from the file
// keep their defaults.
type fileConfig struct {
	Level          *string `yaml:"level"`
	ConsoleEnabled *bool   `yaml:"console_enabled"`
	ConsoleFormat  *string `yaml:"console_format"`
	FileEnabled    *bool   `yaml:"file_enabled"`
	FilePath       *string `yaml:"file_path"`
	FileFormat     *string `yaml:"file_format"`
	FileMaxSizeMB  *int    `yaml:"file_max_size_mb"`
	FileMaxBackups *int    `yaml:"file_max_backups"`
	FileMaxAgeDays *int    `yaml:"file_max_age_days"`
}

// LoadConfig reads the logging block of the YAML file at path over the
// defaults, then applies the LOG_LEVEL, LOG_CONSOLE_FORMAT,
// LOG_FILE_ENABLED and LOG_FILE_PATH environment overrides. A missing file
// or empty path yields the defaults; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read logging config: %w", err)
		default:
			var doc struct {
				Logging fileConfig `yaml:"logging"`
			}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return cfg, fmt.Errorf("%w: %v", ErrBadConfig, err)
			}
			doc.Logging.merge(&cfg)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func (f fileConfig) merge(cfg *Config) {
	set(&cfg.Level, f.Level)
	set(&cfg.ConsoleEnabled, f.ConsoleEnabled)
	set(&cfg.ConsoleFormat, f.ConsoleFormat)
	set(&cfg.FileEnabled, f.FileEnabled)
	set(&cfg.FilePath, f.FilePath)
	set(&cfg.FileFormat, f.FileFormat)
	set(&cfg.FileMaxSizeMB, f.FileMaxSizeMB)
	set(&cfg.FileMaxBackups, f.FileMaxBackups)
	set(&cfg.FileMaxAgeDays, f.FileMaxAgeDays)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_CONSOLE_FORMAT"); v != "" {
		cfg.ConsoleFormat = v
	}
	if v := os.Getenv("LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.FileEnabled = enabled
		}
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		cfg.FilePath = v
	}
}
