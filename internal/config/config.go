package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model. It captures where the
// dataset lives, how the activity simulator paces itself, and where
// metrics are served.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

// IntervalRange bounds one generator's jittered delay, in seconds. Each
// firing re-randomizes the next delay within [Min, Max].
type IntervalRange struct {
	MinSeconds int `yaml:"minSeconds"`
	MaxSeconds int `yaml:"maxSeconds"`
}

type SimulatorConfig struct {
	Enabled bool `yaml:"enabled"`
	// Global cap on simulated writes; a misconfigured interval set cannot
	// flood the store past this.
	PacePerMinute float64 `yaml:"pacePerMinute"`
	PaceBurst     int     `yaml:"paceBurst"`
	// Hours (UTC) during which generators skip their tick. Empty means the
	// community never sleeps.
	QuietHours []int         `yaml:"quietHours"`
	Chat       IntervalRange `yaml:"chat"`
	Microfeed  IntervalRange `yaml:"microfeed"`
	Post       IntervalRange `yaml:"post"`
	Comment    IntervalRange `yaml:"comment"`
	Vote       IntervalRange `yaml:"vote"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the stock configuration with the forum's canonical
// generator cadences.
func Default() Config {
	return Config{
		Storage: StorageConfig{DBPath: "./nightrituals.db"},
		Simulator: SimulatorConfig{
			Enabled:       true,
			PacePerMinute: 60,
			PaceBurst:     10,
			QuietHours:    []int{},
			Chat:          IntervalRange{MinSeconds: 45, MaxSeconds: 90},
			Microfeed:     IntervalRange{MinSeconds: 120, MaxSeconds: 300},
			Post:          IntervalRange{MinSeconds: 600, MaxSeconds: 1200},
			Comment:       IntervalRange{MinSeconds: 180, MaxSeconds: 480},
			Vote:          IntervalRange{MinSeconds: 60, MaxSeconds: 180},
		},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("NIGHT_RITUALS_DB"); v != "" && c.Storage.DBPath == "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" && c.Metrics.Addr == "" {
		c.Metrics.Addr = v
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
