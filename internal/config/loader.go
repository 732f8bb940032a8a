package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "colorstack.yaml"

// Load loads the Color Stack configuration and validates it.
// Search order: customPath -> ~/.colorstack/configs/colorstack.yaml ->
// ./configs/colorstack.yaml -> embedded default.
//
// A broken custom file is an error. Broken files in the search directories are
// skipped, as if they were absent.
func Load(customPath string) (ColorStackConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := Parse(defaultColorStackYAML)
	if err != nil {
		cfg = DefaultColorStackConfig()
	}
	return cfg, cfg.Validate()
}

// Locate returns the file Load would read, or "" when it would fall back to
// the embedded default.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile reads and parses one YAML file over the defaults. It does not
// validate.
func LoadFile(path string) (ColorStackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultColorStackConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultColorStackConfig, so omitted keys keep
// their default values. Unknown keys are rejected.
func Parse(data []byte) (ColorStackConfig, error) {
	cfg := DefaultColorStackConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves the defaults in place.
		if errors.Is(err, io.EOF) {
			return DefaultColorStackConfig(), nil
		}
		return DefaultColorStackConfig(), err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg ColorStackConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorstack", "configs", filename)
}
