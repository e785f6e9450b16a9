package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchmarny/shoreline/pkg/beach"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "shoreline"
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	DefaultAddress = "127.0.0.1"
	DefaultPort    = 8080
)

var ErrConfigDirRequired = errors.New("config directory required")

// Config is the on-disk application configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Server   ServerConfig  `yaml:"server"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Chart    ChartConfig   `yaml:"chart"`
}

type ServerConfig struct {
	Address     string   `yaml:"address"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
}

// ScoringConfig overrides the canonical scoring constants. Table, when set,
// replaces the whole grain/slope table.
type ScoringConfig struct {
	MaxScore int              `yaml:"max_score"`
	Locale   string           `yaml:"locale"`
	Table    beach.ScoreTable `yaml:"table,omitempty"`
}

type ChartConfig struct {
	XMin    float64 `yaml:"x_min"`
	XMax    float64 `yaml:"x_max"`
	YMin    float64 `yaml:"y_min"`
	YMax    float64 `yaml:"y_max"`
	DMin    float64 `yaml:"d_min"`
	DMax    float64 `yaml:"d_max"`
	Samples int     `yaml:"samples"`
	LogAxes bool    `yaml:"log_axes"`
}

// Default returns the configuration matching beach.DefaultProfile.
func Default() *Config {
	p := beach.DefaultProfile()
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Address: DefaultAddress,
			Port:    DefaultPort,
		},
		Scoring: ScoringConfig{
			MaxScore: p.MaxScore,
			Locale:   string(p.Locale),
		},
		Chart: ChartConfig{
			XMin:    p.Window.XMin,
			XMax:    p.Window.XMax,
			YMin:    p.Window.YMin,
			YMax:    p.Window.YMax,
			DMin:    p.Grid.DMin,
			DMax:    p.Grid.DMax,
			Samples: p.Grid.Samples,
			LogAxes: p.LogAxes,
		},
	}
}

// Profile builds and validates the scoring profile described by c.
func (c *Config) Profile() (*beach.Profile, error) {
	p := beach.DefaultProfile()

	locale, err := beach.ParseLocale(c.Scoring.Locale)
	if err != nil {
		return nil, fmt.Errorf("scoring.locale: %w", err)
	}

	p.Locale = locale
	p.MaxScore = c.Scoring.MaxScore
	if len(c.Scoring.Table) > 0 {
		p.Name = "custom"
		p.Table = c.Scoring.Table.Clone()
	}
	p.Window = beach.Window{
		XMin: c.Chart.XMin,
		XMax: c.Chart.XMax,
		YMin: c.Chart.YMin,
		YMax: c.Chart.YMax,
	}
	p.Grid = beach.Grid{
		DMin:    c.Chart.DMin,
		DMax:    c.Chart.DMax,
		Samples: c.Chart.Samples,
	}
	p.LogAxes = c.Chart.LogAxes

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return p, nil
}

// Save writes c to config.yaml in dirPath.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return ErrConfigDirRequired
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write config file: %s: %w", path, err)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
// Keys missing from the file keep their default values.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, ErrConfigDirRequired
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, fmt.Errorf("failed to create dir: %s: %w", dirPath, err)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %s: %w", path, err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file: %s: %w", path, err)
	}
	return c, nil
}

// GetOrCreateHomeDir returns the app directory in the user's home.
// The created flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get user home dir: %w", err)
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, fmt.Errorf("failed to create dir: %s: %w", dir, err)
		}
		created = true
	}
	return dir, created, nil
}
