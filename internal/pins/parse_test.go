package pins

import (
	"path/filepath"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
version: 1
pins:
  manifest.a:
    version: 1.2.3
  manifest.b:
    version: 2.0.0
    band: 6.0.100
`)
	pf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pf.Pins) != 2 {
		t.Errorf("pins count = %d, want 2", len(pf.Pins))
	}
	if pf.Pins["manifest.b"].Band != "6.0.100" {
		t.Errorf("manifest.b band = %q, want 6.0.100", pf.Pins["manifest.b"].Band)
	}
}

func TestParse_missingVersion(t *testing.T) {
	_, err := Parse([]byte("pins: {}\n"))
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestParse_pinWithoutVersion(t *testing.T) {
	data := []byte(`
version: 1
pins:
  manifest.a:
    band: 6.0.100
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for pin without version")
	}
}

func TestParse_invalidYAML(t *testing.T) {
	if _, err := Parse([]byte(":::bad")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestSaveLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workloadq.pins.yaml")
	pf := &File{
		Version: 1,
		Pins: map[string]*Pin{
			"manifest.a": {Version: "1.2.3", Band: "6.0.200"},
		},
	}
	if err := Save(path, pf); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got := loaded.Pins["manifest.a"]
	if got == nil || got.Version != "1.2.3" || got.Band != "6.0.200" {
		t.Errorf("round-tripped pin = %+v", got)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
