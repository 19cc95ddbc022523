package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultClerkName      = "Court Clerk"
	DefaultTickInterval   = time.Second
	DefaultIngestInterval = 3 * time.Second
	FileName              = "courtdesk.yaml"
)

type Config struct {
	DataDir        string
	StorePath      string
	DBPath         string
	ExportDir      string
	LogPath        string
	LogMode        string
	ClerkName      string
	DictionaryPath string
	TickInterval   time.Duration
	IngestInterval time.Duration
}

// fileConfig mirrors the optional YAML file. Zero values keep defaults.
type fileConfig struct {
	ClerkName      string        `yaml:"clerk_name"`
	LogMode        string        `yaml:"log_mode"`
	DictionaryPath string        `yaml:"dictionary_path"`
	TickInterval   time.Duration `yaml:"tick_interval"`
	IngestInterval time.Duration `yaml:"ingest_interval"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:        dataDir,
		StorePath:      filepath.Join(dataDir, "courtdesk.bolt"),
		DBPath:         filepath.Join(dataDir, "courtdesk.db"),
		ExportDir:      filepath.Join(dataDir, "exports"),
		LogPath:        filepath.Join(dataDir, "logs", "courtdesk.log"),
		LogMode:        "development",
		ClerkName:      DefaultClerkName,
		TickInterval:   DefaultTickInterval,
		IngestInterval: DefaultIngestInterval,
	}, nil
}

// Load builds the default config for dataDir and overlays the YAML file at
// path. An empty path falls back to <dataDir>/courtdesk.yaml when present.
func Load(dataDir, path string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, FileName)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.merge(fc, filepath.Dir(path))
}

func (c Config) merge(fc fileConfig, baseDir string) (Config, error) {
	if v := strings.TrimSpace(fc.ClerkName); v != "" {
		c.ClerkName = v
	}
	if v := strings.TrimSpace(fc.LogMode); v != "" {
		c.LogMode = v
	}
	if v := strings.TrimSpace(fc.DictionaryPath); v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(baseDir, v)
		}
		c.DictionaryPath = v
	}
	if fc.TickInterval < 0 || fc.IngestInterval < 0 {
		return Config{}, fmt.Errorf("intervals must be positive")
	}
	if fc.TickInterval > 0 {
		c.TickInterval = fc.TickInterval
	}
	if fc.IngestInterval > 0 {
		c.IngestInterval = fc.IngestInterval
	}
	return c, nil
}
