package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".truthtable.yaml"

const (
	FormatText = "text"
	FormatCSV  = "csv"
)

var formats = []string{FormatText, FormatCSV}

type Config struct {
	TrueSymbol  string `yaml:"true-symbol"`
	FalseSymbol string `yaml:"false-symbol"`
	Format      string `yaml:"format"`
	Debug       bool   `yaml:"debug"`

	// Path is where the config was loaded from and where Write stores it.
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		TrueSymbol:  "T",
		FalseSymbol: "F",
		Format:      FormatText,
		Path:        DefaultPath,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file is reported with an error satisfying os.IsNotExist. The result is not
// validated, callers override values first and then call Validate.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make
		// error messages easier to follow. Best effort.
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = path

	return config, nil
}

// LoadOrDefault loads the config at path, falling back to the defaults when
// the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		config = Default()
		config.Path = path
		return config, nil
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.TrueSymbol == "" || c.FalseSymbol == "" {
		return errors.New("true-symbol and false-symbol must not be empty")
	}
	if c.TrueSymbol == c.FalseSymbol {
		return fmt.Errorf("true-symbol and false-symbol must differ, both are '%s'", c.TrueSymbol)
	}
	if !lo.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format '%s', expected one of %v", c.Format, formats)
	}
	return nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	return nil
}
