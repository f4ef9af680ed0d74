// Package config provides configuration loading and structs for the hikidasu server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hikidasu/hikidasu/internal/registry"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Extract ExtractConfig `yaml:"extract"`
	Formats FormatsConfig `yaml:"formats"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ExtractConfig holds extraction backend settings.
type ExtractConfig struct {
	// FFProbePath is the stream-probing executable; empty means "ffprobe" on PATH.
	FFProbePath string `yaml:"ffprobe_path"`
	// ProbeTimeoutSeconds bounds a single ffprobe run.
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds"`
	// PDFMargin is the band, in points, clipped from each page edge during
	// PDF conversion. Zero keeps all page text.
	PDFMargin float64 `yaml:"pdf_margin"`
}

// ProbeTimeout returns the probe timeout as a duration.
func (e *ExtractConfig) ProbeTimeout() time.Duration {
	return time.Duration(e.ProbeTimeoutSeconds) * time.Second
}

// FormatsConfig holds per-category file extension overrides. An empty
// category keeps its stock extension set.
type FormatsConfig struct {
	Document []string `yaml:"document"`
	Audio    []string `yaml:"audio"`
	Image    []string `yaml:"image"`
	Video    []string `yaml:"video"`
	Text     []string `yaml:"text"`
}

// Sets returns the per-category extension sets with stock defaults filling
// any category left empty. Feed the result to registry.New.
func (f *FormatsConfig) Sets() map[registry.Category][]string {
	sets := registry.DefaultSets()
	override := func(cat registry.Category, exts []string) {
		if len(exts) > 0 {
			sets[cat] = exts
		}
	}
	override(registry.CategoryDocument, f.Document)
	override(registry.CategoryAudio, f.Audio)
	override(registry.CategoryImage, f.Image)
	override(registry.CategoryVideo, f.Video)
	override(registry.CategoryText, f.Text)
	return sets
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.Extract.FFProbePath = expandPath(cfg.Extract.FFProbePath, filepath.Dir(path))
	return &cfg, nil
}

// expandPath resolves a configured executable path. Paths starting with "./"
// are relative to configDir; "~/" expands to the home directory. Bare command
// names are left alone for PATH lookup.
func expandPath(path, configDir string) string {
	switch {
	case path == "" || filepath.IsAbs(path):
		return path
	case strings.HasPrefix(path, "./"):
		return filepath.Join(configDir, path)
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
