package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when TIMELINE_CONFIG does not name another file.
const DefaultFile = "timeline.yaml"

// AutoOutput as OutputPath asks for a timestamped file under OutputDir.
const AutoOutput = "auto"

type Config struct {
	InputPath    string
	OutputPath   string
	OutputDir    string
	Format       string // csv | yaml
	FPS          int
	Duration     float64 // seconds, 0 = max duration of the timeline
	Tracks       []string
	Workers      int
	ScenarioDir  string
	LogLevel     string
	LogFormat    string
	ShowStats    bool
	BuildVersion string
}

// fileConfig mirrors the optional YAML config file. Zero values leave the
// current setting alone.
type fileConfig struct {
	Format      string   `yaml:"format"`
	FPS         int      `yaml:"fps"`
	Duration    float64  `yaml:"duration"`
	Tracks      []string `yaml:"tracks"`
	Workers     int      `yaml:"workers"`
	ScenarioDir string   `yaml:"scenario_dir"`
	OutputDir   string   `yaml:"output_dir"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	ShowStats   bool     `yaml:"stats"`
}

func Default() *Config {
	return &Config{
		Format:      "csv",
		FPS:         30,
		Workers:     runtime.NumCPU(),
		ScenarioDir: "scenarios",
		OutputDir:   "output",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// LoadEnvFiles loads .env files into the process environment. Missing files
// are not an error; variables already set are kept.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyFile overlays settings from a YAML config file. A missing file is
// ignored.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Format != "" {
		c.Format = fc.Format
	}
	if fc.FPS != 0 {
		c.FPS = fc.FPS
	}
	if fc.Duration != 0 {
		c.Duration = fc.Duration
	}
	if len(fc.Tracks) > 0 {
		c.Tracks = fc.Tracks
	}
	if fc.Workers != 0 {
		c.Workers = fc.Workers
	}
	if fc.ScenarioDir != "" {
		c.ScenarioDir = fc.ScenarioDir
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	c.ShowStats = c.ShowStats || fc.ShowStats
	return nil
}

// ApplyEnv overlays TIMELINE_* variables looked up through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("TIMELINE_FORMAT"); v != "" {
		c.Format = v
	}
	if v := getenv("TIMELINE_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMELINE_FPS: %w", err)
		}
		c.FPS = n
	}
	if v := getenv("TIMELINE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMELINE_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := getenv("TIMELINE_TRACKS"); v != "" {
		c.Tracks = SplitList(v)
	}
	if v := getenv("TIMELINE_SCENARIO_DIR"); v != "" {
		c.ScenarioDir = v
	}
	if v := getenv("TIMELINE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := getenv("TIMELINE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("TIMELINE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("TIMELINE_STATS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TIMELINE_STATS: %w", err)
		}
		c.ShowStats = b
	}
	return nil
}

// Validate checks the settings used by the sample command.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %g", c.Duration)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case "csv", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (csv, yaml)", c.Format)
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
