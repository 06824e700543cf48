package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvDebug        = "TRIMMER_DEBUG"
	EnvLogFormat    = "TRIMMER_LOG_FORMAT"
	EnvOutputDir    = "TRIMMER_OUTPUT_DIR"
	EnvOutlineColor = "TRIMMER_OUTLINE_COLOR"
)

// LoadDotEnv loads the first .env found in the working directory or next to
// the executable. Variables already set in the process win.
func LoadDotEnv() string {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			if godotenv.Load(p) == nil {
				return p
			}
		}
	}
	return ""
}

// ApplyEnv overrides fields from TRIMMER_* environment variables and
// re-validates.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Debug = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutlineColor)); v != "" {
		c.OutlineColor = v
	}
	_ = c.Validate()
}
