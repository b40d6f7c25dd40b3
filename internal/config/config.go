package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything operators may tune without rebuilding: the
// category set, money constants and the validation policy. Values absent
// from the file keep the built-in defaults below.

type Config struct {
	// Root is the workspace root holding the templates dir, category trees
	// and the consolidated accounting folder. Env TSM_ROOT wins over YAML.
	Root string `yaml:"root"`

	Categories []CategoryConfig `yaml:"categories"`

	HourlyRate float64 `yaml:"hourly_rate"`
	PageSize   int     `yaml:"page_size"`

	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	// Date acceptance window. The two snapshots of the source system
	// disagreed on past dates, so the window is policy, not code.
	MaxPastDays   int `yaml:"max_past_days"`
	MaxFutureDays int `yaml:"max_future_days"`
}

type CategoryConfig struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Folder    string `yaml:"folder"`
	WorksFile string `yaml:"works_file"`
}

func Default() Config {
	return Config{
		Root: defaultRoot(),
		Categories: []CategoryConfig{
			{
				ID:        "base",
				Name:      "Типовой заказ-наряд",
				Folder:    "Типовой_заказ",
				WorksFile: "works_list_base.xlsx",
			},
		},
		HourlyRate:      2500,
		PageSize:        8,
		CacheTTLSeconds: 3600,
		MaxPastDays:     30,
		MaxFutureDays:   365,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error: the defaults describe a fully working single-category setup.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("TSM_ROOT"); v != "" {
		cfg.Root = v
	}
	return cfg
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "TruckService_Manager"
	}
	return filepath.Join(home, "Desktop", "TruckService_Manager")
}
