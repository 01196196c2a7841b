package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/convert"
)

const (
	// ConfigFileName is the default configuration file, relative to the
	// working directory.
	ConfigFileName = "u_templating_config.json"

	// EnvConfigPath names the environment variable holding the
	// configuration file path.
	EnvConfigPath = "U_TEMPLATING_CONFIG_PATH"
)

// Config represents the u_templating_config.json document.
type Config struct {
	// Conversions lists registered conversion names in the order the
	// pipeline tries them.
	Conversions []string `json:"conversions"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// New creates an empty Config: no conversions, values pass through.
func New() *Config {
	return &Config{Conversions: []string{}}
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E122").
				WithPath(path).
				WithSuggestion("Create the file or unset " + EnvConfigPath)
		}
		return nil, errors.New("E120").WithPath(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithPath(path).
			WithDetail("Failed to parse configuration: " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}
	if cfg.Conversions == nil {
		cfg.Conversions = []string{}
	}
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathFromEnv returns the configuration path and whether it was named
// explicitly through EnvConfigPath.
func PathFromEnv() (path string, explicit bool) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	return ConfigFileName, false
}

// LoadFromEnv loads the file named by EnvConfigPath, or ConfigFileName when
// the variable is unset. A missing default file yields an empty Config; a
// missing file named explicitly is an error.
func LoadFromEnv() (*Config, error) {
	path, explicit := PathFromEnv()
	if !explicit && !Exists(path) {
		return New(), nil
	}
	return LoadFile(path)
}

// Validate checks that every conversion name is non-empty.
func (c *Config) Validate() error {
	for i, name := range c.Conversions {
		if name == "" {
			return errors.New("E120").
				WithPath(c.configPath).
				WithDetail("conversions[" + itoa(i) + "] is empty")
		}
	}
	return nil
}

// Pipeline resolves the conversion names against reg (convert.Default
// when nil).
func (c *Config) Pipeline(reg *convert.Registry) (convert.Pipeline, error) {
	if reg == nil {
		reg = convert.Default
	}
	return reg.Resolve(c.Conversions)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E400").WithPath(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from. Empty for a
// Config that was not loaded from a file.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Exists checks if a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
