package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`{
  "version": "6.0.4",
  "description": "emscripten toolchain",
  "depends-on": {
    "microsoft.net.workload.mono.toolchain": "6.0.4"
  },
  "workloads": {
    "wasm-tools": {
      "description": "WebAssembly build tools",
      "packs": ["Microsoft.NET.Runtime.WebAssembly.Sdk"],
      "extends": ["microsoft-net-runtime-mono-tooling"],
      "platforms": ["win-x64", "linux-x64"]
    }
  },
  "packs": {
    "Microsoft.NET.Runtime.WebAssembly.Sdk": {
      "kind": "sdk",
      "version": "6.0.4",
      "alias-to": {
        "win-x64": "Microsoft.NET.Runtime.WebAssembly.Sdk.win-x64"
      }
    }
  }
}`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version.String() != "6.0.4" {
		t.Errorf("version = %q, want 6.0.4", m.Version)
	}
	wl, ok := m.Workloads["wasm-tools"]
	if !ok {
		t.Fatal("wasm-tools workload missing")
	}
	if len(wl.Packs) != 1 || wl.Packs[0] != "Microsoft.NET.Runtime.WebAssembly.Sdk" {
		t.Errorf("workload packs = %v", wl.Packs)
	}
	pack := m.Packs["Microsoft.NET.Runtime.WebAssembly.Sdk"]
	if pack.Kind != "sdk" || pack.Version.String() != "6.0.4" {
		t.Errorf("pack = %+v", pack)
	}
	if m.DependsOn["microsoft.net.workload.mono.toolchain"].String() != "6.0.4" {
		t.Errorf("depends-on = %v", m.DependsOn)
	}
}

func TestParse_numericVersion(t *testing.T) {
	m, err := Parse([]byte(`{"version": 5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version.String() != "5" {
		t.Errorf("version = %q, want 5", m.Version)
	}
}

func TestParse_invalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{nope")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParse_invalidVersionValue(t *testing.T) {
	if _, err := Parse([]byte(`{"version": [1]}`)); err == nil {
		t.Fatal("expected error for array version")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "WorkloadManifest.json")
	if err := os.WriteFile(path, []byte(`{"version":"1.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Version.String() != "1.0.0" {
		t.Errorf("version = %q", m.Version)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Load() should fail on a missing file")
	}
}

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(`{"version":"2.0.0","description":"d"}`))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if m.Description != "d" {
		t.Errorf("description = %q", m.Description)
	}
}
