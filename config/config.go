// Package config loads runner defaults from a YAML file.
package config // import "github.com/bernborgess/carcara/config"

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with time.ParseDuration YAML decoding.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config are the runner defaults. The zero value is not valid; start
// from Default.
type Config struct {
	// Jobs is the number of scripts solved concurrently.
	Jobs int `yaml:"jobs"`
	// Timeout bounds solving one script. Zero disables the bound.
	Timeout Duration `yaml:"timeout"`
	// Cache is the verdict cache path used by the stats command.
	Cache string `yaml:"cache"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{Jobs: 4, Cache: "carcara-cache.cbor"}
}

// Load reads a config file over the defaults. A missing path is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate rejects unusable settings.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", time.Duration(c.Timeout))
	}
	return nil
}
