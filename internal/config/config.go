// Package config handles the optional workloadq.yaml tool configuration:
// additional manifest roots, the ignore-default-roots toggle, and the list
// of outdated manifest ids to exclude from directory scanning.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File represents workloadq.yaml.
type File struct {
	Version            int      `yaml:"version"`
	Roots              []string `yaml:"roots,omitempty"`
	IgnoreDefaultRoots bool     `yaml:"ignore_default_roots,omitempty"`
	Outdated           []string `yaml:"outdated,omitempty"`
}

// Load reads and validates a workloadq.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates workloadq.yaml content.
func Parse(data []byte) (*File, error) {
	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Save validates and writes a config file to disk.
func Save(path string, cf *File) error {
	if err := validate(cf); err != nil {
		return err
	}
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(cf *File) error {
	if cf.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", cf.Version)
	}
	for i, root := range cf.Roots {
		if strings.TrimSpace(root) == "" {
			return fmt.Errorf("config: roots[%d] must not be empty", i)
		}
	}
	for i, id := range cf.Outdated {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("config: outdated[%d] must not be empty", i)
		}
	}
	return nil
}
