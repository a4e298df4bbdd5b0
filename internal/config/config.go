// Package config handles the .ticklist directory and config.yaml. Every
// directory ticklist runs in gets a .ticklist/ folder for its config and
// session logs; the task file itself lives next to it as tasks.txt.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// TicklistDir is the name of the directory we create in each project.
	TicklistDir = ".ticklist"

	// DefaultDataFile is where tasks persist, relative to the project dir.
	DefaultDataFile = "tasks.txt"
)

const defaultConfigYAML = `# ticklist configuration
version: 1

# File the task list persists to, relative to this directory.
data_file: tasks.txt

# Hex colors for the importance labels.
theme:
  high: "#FF6B6B"
  medium: "#F7B801"
  low: "#4CAF50"
`

// Theme holds the hex colors used for importance labels.
type Theme struct {
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`
}

// FileConfig models .ticklist/config.yaml.
type FileConfig struct {
	Version  int    `yaml:"version"`
	DataFile string `yaml:"data_file"`
	Theme    Theme  `yaml:"theme"`
}

// Config holds the runtime configuration for a ticklist session.
type Config struct {
	// ProjectDir is the directory the user ran ticklist from.
	ProjectDir string

	// TicklistProjectDir is ProjectDir/.ticklist.
	TicklistProjectDir string

	File FileConfig
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:  1,
		DataFile: DefaultDataFile,
		Theme: Theme{
			High:   "#FF6B6B",
			Medium: "#F7B801",
			Low:    "#4CAF50",
		},
	}
}

// InitProjectDir creates the .ticklist directory structure in the given
// project directory and seeds config.yaml with defaults if it is absent.
//
// Structure created:
// .ticklist/
// ├── config.yaml
// └── logs/   <- session logbook
func InitProjectDir(projectDir string) error {
	dir := filepath.Join(projectDir, TicklistDir)
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}
	return ensureConfigFile(filepath.Join(dir, "config.yaml"))
}

func ensureConfigFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

// New loads the configuration for projectDir. Missing or partial
// config.yaml fields fall back to defaults.
func New(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		TicklistProjectDir: filepath.Join(projectDir, TicklistDir),
		File:               defaultFileConfig(),
	}
	if err := cfg.loadFileConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFileConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	parsed := defaultFileConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	defaults := defaultFileConfig()
	if strings.TrimSpace(parsed.DataFile) == "" {
		parsed.DataFile = defaults.DataFile
	}
	if strings.TrimSpace(parsed.Theme.High) == "" {
		parsed.Theme.High = defaults.Theme.High
	}
	if strings.TrimSpace(parsed.Theme.Medium) == "" {
		parsed.Theme.Medium = defaults.Theme.Medium
	}
	if strings.TrimSpace(parsed.Theme.Low) == "" {
		parsed.Theme.Low = defaults.Theme.Low
	}
	c.File = parsed
	return nil
}

// ConfigPath returns the on-disk location of the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.TicklistProjectDir, "config.yaml")
}

// DataFilePath returns the path of the task file, resolved against the
// project directory when configured relative.
func (c *Config) DataFilePath() string {
	if filepath.IsAbs(c.File.DataFile) {
		return c.File.DataFile
	}
	return filepath.Join(c.ProjectDir, c.File.DataFile)
}

// LogsDir returns the path to the session log directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.TicklistProjectDir, "logs")
}
