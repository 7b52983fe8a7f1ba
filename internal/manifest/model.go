package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest represents a parsed WorkloadManifest.json descriptor.
type Manifest struct {
	Version     Version             `json:"version"`
	Description string              `json:"description,omitempty"`
	DependsOn   map[string]Version  `json:"depends-on,omitempty"`
	Workloads   map[string]Workload `json:"workloads,omitempty"`
	Packs       map[string]Pack     `json:"packs,omitempty"`
}

// Workload describes a single installable workload within a manifest.
type Workload struct {
	Description string   `json:"description,omitempty"`
	Abstract    bool     `json:"abstract,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Packs       []string `json:"packs,omitempty"`
	Extends     []string `json:"extends,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
}

// Pack describes an installable pack referenced by workloads.
type Pack struct {
	Kind    string            `json:"kind"`
	Version Version           `json:"version"`
	AliasTo map[string]string `json:"alias-to,omitempty"`
}

// Version is a manifest version value. Manifests in the wild encode versions
// both as JSON strings and as bare numbers, so decoding accepts either.
type Version string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Version) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty version value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Version(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("version must be a string or number: %w", err)
	}
	*v = Version(n.String())
	return nil
}

func (v Version) String() string {
	return string(v)
}
