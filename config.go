package syntactix

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config represents the syntactix configuration
type Config struct {
	Lexer       LexerConfig       `yaml:"lexer"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Output      OutputConfig      `yaml:"output"`
}

// LexerConfig represents scanning engine settings
type LexerConfig struct {
	// KeepLineEndings disables CRLF/CR to LF normalization before scanning.
	// Positions are then reported against the raw text.
	KeepLineEndings bool `yaml:"keep_line_endings"`
}

// DiagnosticsConfig represents caret diagram settings
type DiagnosticsConfig struct {
	Color    ColorMode `yaml:"color"`
	Header   string    `yaml:"header"`
	Filename string    `yaml:"filename"`
}

// OutputConfig represents how the CLI prints tokens and trees
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
}

// ColorMode selects when diagnostics are colored
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OutputFormat selects the CLI output encoding
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	switch config.Diagnostics.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: diagnostics.color '%s' is invalid: must be one of auto, always, never", ErrConfigValidation, config.Diagnostics.Color)
	}

	switch config.Output.Format {
	case "", FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, yaml, json", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Lexer: LexerConfig{
			KeepLineEndings: false,
		},
		Diagnostics: DiagnosticsConfig{
			Color:    ColorAuto,
			Header:   "Syntax error",
			Filename: "<input>",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Diagnostics.Color == "" {
		config.Diagnostics.Color = defaults.Diagnostics.Color
	}

	if config.Diagnostics.Header == "" {
		config.Diagnostics.Header = defaults.Diagnostics.Header
	}

	if config.Diagnostics.Filename == "" {
		config.Diagnostics.Filename = defaults.Diagnostics.Filename
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}
}

// loadEnvFiles loads .env and then .env.local; neither is required.
func loadEnvFiles() error {
	for _, name := range []string{".env", ".env.local"} {
		if !fileExists(name) {
			continue
		}

		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s file: %w", name, err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Diagnostics.Header = expandEnvVars(config.Diagnostics.Header)
	config.Diagnostics.Filename = expandEnvVars(config.Diagnostics.Filename)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
