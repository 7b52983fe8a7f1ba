package pins

// File represents workloadq.pins.yaml.
type File struct {
	Version int             `yaml:"version"`
	Pins    map[string]*Pin `yaml:"pins"`
}

// Pin records the pinned version (and optionally band) for a manifest id.
type Pin struct {
	Version string `yaml:"version"`
	Band    string `yaml:"band,omitempty"`
}
