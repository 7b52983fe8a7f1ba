package pins

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a workloadq.pins.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pins file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates workloadq.pins.yaml content.
func Parse(data []byte) (*File, error) {
	var pf File
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing pins YAML: %w", err)
	}
	if err := validate(&pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

// Save validates and writes a pins file to disk.
func Save(path string, pf *File) error {
	if err := validate(pf); err != nil {
		return err
	}
	data, err := yaml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("marshaling pins file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing pins file: %w", err)
	}
	return nil
}

func validate(pf *File) error {
	if pf.Version != 1 {
		return fmt.Errorf("unsupported pins file version: %d (expected 1)", pf.Version)
	}
	for id, p := range pf.Pins {
		if id == "" {
			return fmt.Errorf("pins: empty manifest id")
		}
		if p == nil || p.Version == "" {
			return fmt.Errorf("pins: %s: version is required", id)
		}
	}
	return nil
}
