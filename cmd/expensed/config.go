// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/expensed/pkg/expense"
)

// defaultConfigName is looked up in the working directory when --config
// is not given.
const defaultConfigName = "expensed.yaml"

// deploymentModeEnv selects durable vs. non-durable storage. The single
// recognized token is "cloud" (case-insensitive); anything else means a
// local durable file.
const (
	deploymentModeEnv   = "DEPLOYMENT_MODE"
	deploymentModeCloud = "cloud"
)

// StorageConfig configures the expense database.
type StorageConfig struct {
	// Path of the SQLite file. Defaults to expenses.db next to the
	// binary. Ignored in cloud deployments.
	Path string `yaml:"path"`

	// CategoriesPath optionally overrides the categories resource
	// document. Empty means the embedded default list.
	CategoriesPath string `yaml:"categories_path"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// Config is the expensed configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Path: defaultDBPath()},
		HTTP:    HTTPConfig{Addr: "0.0.0.0:8000"},
	}
}

// defaultDBPath co-locates the database with the running binary, falling
// back to the working directory when the executable path is unknown.
func defaultDBPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "expenses.db"
	}
	return filepath.Join(filepath.Dir(exe), "expenses.db")
}

// CloudDeployment reports whether the deployment-mode indicator selects
// the non-durable in-memory database.
func CloudDeployment() bool {
	return strings.EqualFold(os.Getenv(deploymentModeEnv), deploymentModeCloud)
}

// applyEnvOverrides applies environment variables on top of the loaded
// configuration.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EXPENSED_DB_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("EXPENSED_CATEGORIES_PATH"); v != "" {
		c.Storage.CategoriesPath = v
	}
	if v := os.Getenv("EXPENSED_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
}

// clientConfig translates the configuration into storage settings,
// honoring the deployment mode.
func (c *Config) clientConfig() expense.ClientConfig {
	return expense.ClientConfig{
		Path:     c.Storage.Path,
		InMemory: CloudDeployment(),
	}
}

// LoadConfig reads the configuration file and applies env overrides.
// A missing file is an error; callers fall back to DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// loadConfigOrDefault is the fallback chain every command uses: file if
// present, otherwise defaults with env overrides.
func loadConfigOrDefault(path string, quiet bool) *Config {
	cfg, err := LoadConfig(path)
	if err == nil {
		return cfg
	}
	if !quiet && path != "" {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration with environment variable overrides\n")
	}
	cfg = DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// SaveConfig writes the configuration to path as YAML.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
