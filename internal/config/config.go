// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv
const (
	EnvConfig      = "RESUMETEX_CONFIG"
	EnvOutput      = "RESUMETEX_OUTPUT"
	EnvResourceDir = "RESUMETEX_RESOURCE_DIR"
	EnvEngine      = "RESUMETEX_ENGINE"
	EnvMaxPages    = "RESUMETEX_MAX_PAGES"
	EnvVerbose     = "RESUMETEX_VERBOSE"
	EnvTemplate    = "RESUMETEX_TEMPLATE"
)

// Defaults used when neither the config file nor the environment set a value
const (
	DefaultOutput      = "out.tex"
	DefaultResourceDir = "resources"
	DefaultEngine      = "pdflatex"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults.
type Config struct {
	// Paths
	Output      string `json:"output,omitempty"`       // Generated .tex file
	ResourceDir string `json:"resource_dir,omitempty"` // Icon images, relative to the .tex file
	Template    string `json:"template,omitempty"`     // Preamble template override

	// Compilation
	Engine   string `json:"engine,omitempty" validate:"omitempty,oneof=pdflatex xelatex lualatex"`
	MaxPages int    `json:"max_pages,omitempty" validate:"gte=0"` // 0 disables the page limit

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print a summary of what was generated
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Output:      DefaultOutput,
		ResourceDir: DefaultResourceDir,
		Engine:      DefaultEngine,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration overrides from the environment. Unset variables
// leave the corresponding field empty.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Output:      getenv(EnvOutput),
		ResourceDir: getenv(EnvResourceDir),
		Engine:      getenv(EnvEngine),
		Template:    getenv(EnvTemplate),
	}

	if v := strings.TrimSpace(getenv(EnvMaxPages)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an integer, got %q", EnvMaxPages, v)
		}
		cfg.MaxPages = n
	}
	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be a boolean, got %q", EnvVerbose, v)
		}
		cfg.Verbose = b
	}

	return cfg, nil
}

// Load resolves the effective configuration: environment over config file over defaults.
// The config file is named by RESUMETEX_CONFIG and is optional.
func Load(getenv func(string) string) (Config, error) {
	env, err := FromEnv(getenv)
	if err != nil {
		return Config{}, err
	}

	base := Defaults()
	if path := getenv(EnvConfig); path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		base = file.MergeWithDefaults(base)
	}

	cfg := env.MergeWithDefaults(base)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			switch fe.Tag() {
			case "oneof":
				return fmt.Errorf("config error: '%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
			case "gte":
				return fmt.Errorf("config error: '%s' must be non-negative", fe.Field())
			}
			return fmt.Errorf("config error: '%s' failed %s validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// jsonFieldName reports fields by their JSON key so errors match the config file
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.ResourceDir == "" {
		result.ResourceDir = defaults.ResourceDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}

	// Int fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}

	// Bool fields: cannot distinguish unset from false, so either source enables it
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
