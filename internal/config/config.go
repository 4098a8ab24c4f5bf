// Package config holds the pixelcss command configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PIXELCSS_"

// Config is the complete command configuration.
type Config struct {
	// Geometry
	PixelSize    float64 `yaml:"pixel_size"`
	Columns      int     `yaml:"columns"`
	BlurRadius   float64 `yaml:"blur_radius"`
	SpreadRadius float64 `yaml:"spread_radius"`
	Format       string  `yaml:"format"` // string, array

	// Animation
	Duration  float64 `yaml:"duration"` // seconds
	ClassName string  `yaml:"class_name"`

	Workbook WorkbookConfig `yaml:"workbook"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorkbookConfig configures reading frames from xlsx files.
type WorkbookConfig struct {
	Sheets       []string `yaml:"sheets"`
	NaturalOrder bool     `yaml:"natural_order"`
	ScanRows     int      `yaml:"scan_rows"`
	ScanColumns  int      `yaml:"scan_columns"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PixelSize: 10,
		Columns:   1,
		Format:    string(models.FormatString),
		Duration:  1,
		Workbook: WorkbookConfig{
			NaturalOrder: true,
			ScanRows:     128,
			ScanColumns:  128,
		},
		Logging: LoggingConfig{
			Level: "normal",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies PIXELCSS_* environment variables.
func (c *Config) applyEnvOverrides() error {
	var errs error

	floatVar := func(name string, dst *float64) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	intVar := func(name string, dst *int) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	stringVar := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	floatVar("PIXEL_SIZE", &c.PixelSize)
	intVar("COLUMNS", &c.Columns)
	floatVar("BLUR_RADIUS", &c.BlurRadius)
	floatVar("SPREAD_RADIUS", &c.SpreadRadius)
	stringVar("FORMAT", &c.Format)
	floatVar("DURATION", &c.Duration)
	stringVar("CLASS_NAME", &c.ClassName)
	stringVar("LOG_LEVEL", &c.Logging.Level)

	if v := os.Getenv(EnvPrefix + "SHEETS"); v != "" {
		c.Workbook.Sheets = strings.Split(v, ",")
	}

	return errs
}

// Validate checks the configuration for values the command cannot work with.
func (c *Config) Validate() error {
	if c.PixelSize <= 0 {
		return fmt.Errorf("pixel_size must be positive, got %v", c.PixelSize)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.BlurRadius < 0 || c.SpreadRadius < 0 {
		return fmt.Errorf("blur_radius and spread_radius must not be negative")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	switch models.Format(c.Format) {
	case models.FormatString, models.FormatArray:
	default:
		return fmt.Errorf("invalid format: %s (must be string or array)", c.Format)
	}
	return c.Logging.Validate()
}
