// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for devnexus.
type Config struct {
	DataDir   string        `mapstructure:"data_dir" yaml:"data_dir"`
	ExportDir string        `mapstructure:"export_dir" yaml:"export_dir"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string        `mapstructure:"log_file" yaml:"log_file"`
	Delay     time.Duration `mapstructure:"delay" yaml:"delay"`
	ServePort int           `mapstructure:"serve_port" yaml:"serve_port"`
	Editor    string        `mapstructure:"editor" yaml:"editor"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DataDir:   ".devnexus",
		ExportDir: "submissions",
		LogLevel:  "info",
		Delay:     time.Second,
		ServePort: 8787,
	}
}

var envKeys = []string{"data_dir", "export_dir", "log_level", "log_file", "delay", "serve_port", "editor"}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("devnexus")

	def := Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("delay", def.Delay)
	v.SetDefault("serve_port", def.ServePort)
	v.SetDefault("editor", "")

	v.SetEnvPrefix("DEVNEXUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key, "DEVNEXUS_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Editor == "" {
		cfg.Editor = os.Getenv("EDITOR")
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns $XDG_CONFIG_HOME/devnexus/devnexus.yml, or the
// ~/.config equivalent.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "devnexus", "devnexus.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "devnexus", "devnexus.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "devnexus.yml"
}

// DatabasePath is the sqlite file inside the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "devnexus.db")
}

// NATSDir is the JetStream storage directory inside the data dir.
func (c *Config) NATSDir() string {
	return filepath.Join(c.DataDir, "nats")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
