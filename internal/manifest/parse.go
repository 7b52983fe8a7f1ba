// Package manifest handles reading WorkloadManifest.json descriptors and
// locating their localization catalogs. It does not validate manifest
// contents beyond structural JSON decoding; resolution decides which
// directory to read from, this package decides how to read it.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads and parses a WorkloadManifest.json file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses a manifest from a stream, typically a lazily-opened resolver
// entry.
func Read(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses WorkloadManifest.json content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return &m, nil
}
