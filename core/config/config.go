// Package config holds the CLI's settings: timeout bounds and extra
// environment defaults handed to every execution.
package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// Config is the vshell CLI configuration.
type Config struct {
	// DefaultTimeoutSeconds bounds executions that don't pick a timeout.
	DefaultTimeoutSeconds int `json:"default_timeout_seconds" validate:"gt=0"`
	// MaxTimeoutSeconds clamps caller-supplied timeouts.
	MaxTimeoutSeconds int `json:"max_timeout_seconds" validate:"gt=0,lte=3600"`
	// Workspace is the default workspace ID.
	Workspace string `json:"workspace" validate:"required"`
	// Env is merged into the environment of every execution.
	Env map[string]string `json:"env"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	var c Config
	// The embedded default must always parse.
	if err := yaml.UnmarshalStrict(defaultConfigData, &c); err != nil {
		panic(err)
	}
	return &c
}

// Load reads a YAML configuration file, filling unset fields from the
// defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for semantic errors, reporting fields by
// their YAML names.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return validate.Struct(c)
}

// Timeout resolves a requested timeout in seconds against the configured
// default and maximum.
func (c *Config) Timeout(requestedSeconds int) time.Duration {
	seconds := requestedSeconds
	if seconds <= 0 {
		seconds = c.DefaultTimeoutSeconds
	}
	if seconds > c.MaxTimeoutSeconds {
		seconds = c.MaxTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
