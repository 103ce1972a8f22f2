package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the per-directory scan settings read from
// mojiscan.yaml. Every field is optional; zero values mean "use the
// built-in defaults".
type ProjectConfig struct {
	// SkipExtensions lists additional file extensions (with leading dot)
	// to exclude from scanning. These extend the built-in skip list,
	// they do not replace it.
	SkipExtensions []string `yaml:"skip_extensions,omitempty"`

	// Verbose enables diagnostic logging on stderr.
	Verbose bool `yaml:"verbose,omitempty"`
}

const ConfigFileName = "mojiscan.yaml"

// Load reads mojiscan.yaml from sourcePath. Returns ErrConfigNotFound
// when the file does not exist. Unknown keys are an error, so a
// misspelled setting fails instead of being silently ignored.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}
