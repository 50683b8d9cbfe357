// Package config loads runner settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SessionEnv overrides the session attribute when set.
const SessionEnv = "AOC_SESSION"

const (
	defaultCachePath = "./data/inputs"
	defaultURL       = "https://adventofcode.com/2022"
)

// Config mirrors the attributes accepted in the config file:
//
//	cache_path = "./data/inputs"
//	url        = "https://adventofcode.com/2022"
//	session    = "53616c7465645f5f..."
//	history    = "./data/history.db"
type Config struct {
	CachePath string `hcl:"cache_path,optional"`
	URL       string `hcl:"url,optional"`
	Session   string `hcl:"session,optional"`
	History   string `hcl:"history,optional"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and decodes the file at path. A missing file yields an error
// matching os.ErrNotExist.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	var c Config
	if diags := gohcl.DecodeBody(f.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.CachePath == "" {
		c.CachePath = defaultCachePath
	}
	if c.URL == "" {
		c.URL = defaultURL
	}
	if s := os.Getenv(SessionEnv); s != "" {
		c.Session = s
	}
}

// Validate checks that the download URL is absolute http(s).
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("failed to parse url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("url must be an absolute http(s) URL")
	}
	if c.CachePath == "" {
		return errors.New("cache_path is required")
	}
	return nil
}
