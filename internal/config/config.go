// Package config loads the site configuration and applies defaults. The
// configuration file is optional; a missing file yields the defaults so a
// bare content tree still builds.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the source root.
const DefaultFileName = "config.yaml"

// Config represents the site configuration.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
}

// SiteConfig carries site-wide values rendered into pages and the sitemap.
type SiteConfig struct {
	Title         string `yaml:"title"`
	BaseURL       string `yaml:"base_url"`
	Intro         string `yaml:"intro,omitempty"`
	ProjectsIntro string `yaml:"projects_intro,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// TemplatesConfig points at an optional template directory override,
// absolute or relative to the source root.
type TemplatesConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// Load reads <sourceRoot>/config.yaml if present and applies defaults.
// Environment variables referenced in the file are expanded; a .env file in
// the working directory is loaded first when it exists.
func Load(sourceRoot string) (*Config, error) {
	return LoadFile(sourceRoot, DefaultFileName)
}

// LoadFile behaves like Load but reads the named file instead of config.yaml.
// Absolute file names are used as-is.
func LoadFile(sourceRoot, fileName string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	cfg := &Config{}
	path := fileName
	if !filepath.IsAbs(path) {
		path = filepath.Join(sourceRoot, fileName)
	}
	if data, err := os.ReadFile(path); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyDefaults()

	if _, err := url.Parse(cfg.Site.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid site base_url %q: %w", cfg.Site.BaseURL, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "My Site"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://example.com"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "build"
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Title:         "My Site",
			BaseURL:       "https://example.com",
			Intro:         "Welcome to my site.",
			ProjectsIntro: "A list of projects I have worked on.",
		},
		Output: OutputConfig{Directory: "build"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// loadEnvFile loads a .env file from the current directory when present.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
