package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Chart struct {
		Symbol          string  `yaml:"symbol" default:"AAPL" validate:"required"`
		Width           int     `yaml:"width" default:"640" validate:"gte=64,lte=4096"`
		Height          int     `yaml:"height" default:"400" validate:"gte=64,lte=4096"`
		StrokeWidth     float64 `yaml:"stroke_width" default:"2" validate:"gte=0,lte=16"`
		HorizontalLines int     `yaml:"horizontal_lines" default:"4" validate:"gte=0,lte=32"`
		MAPeriod        int     `yaml:"ma_period" default:"20" validate:"gte=0"`
	} `yaml:"chart"`
	Source struct {
		Type      string  `yaml:"type" default:"mock" validate:"oneof=file mock"`
		Path      string  `yaml:"path" validate:"required_if=Type file"`
		MockPrice float64 `yaml:"mock_price" default:"100" validate:"gt=0"`
		MockDays  int     `yaml:"mock_days" default:"120" validate:"gt=0"`
		MockStart string  `yaml:"mock_start" default:"2016-01-04" validate:"datetime=2006-01-02"`
	} `yaml:"source"`
	Output struct {
		Path string `yaml:"path" default:"out/chart.png" validate:"required"`
	} `yaml:"output"`
	Schedule struct {
		RenderCron string `yaml:"render_cron" default:"0 */5 * * * *" validate:"required"`
	} `yaml:"schedule"`
	Server struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Disabled bool `yaml:"disabled"`
	} `yaml:"metrics"`
}

var validate = validator.New()

// Load fills defaults, then reads config from a YAML file and applies .env and
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("STOCKCHART_SYMBOL"); v != "" {
		cfg.Chart.Symbol = v
	}
	if v := os.Getenv("STOCKCHART_SOURCE"); v != "" {
		cfg.Source.Type = v
	}
	if v := os.Getenv("STOCKCHART_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("STOCKCHART_OUTPUT"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("STOCKCHART_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STOCKCHART_RENDER_CRON"); v != "" {
		cfg.Schedule.RenderCron = v
	}
	if v := os.Getenv("STOCKCHART_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse STOCKCHART_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	return nil
}

// Validate checks field ranges and cross-field requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MockStartDate parses Source.MockStart.
func (c *Config) MockStartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Source.MockStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse source.mock_start: %w", err)
	}
	return t, nil
}
