package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fbkclanna/workloadq/internal/testutil"
)

const showManifest = `{
	"version": "5.0.0",
	"description": "wasm workloads",
	"depends-on": {"microsoft.net.workload.emscripten": "5.0.0"},
	"workloads": {
		"wasm-tools": {
			"description": "WebAssembly build tools",
			"packs": ["pack.a", "pack.b"]
		}
	},
	"packs": {
		"pack.a": {"kind": "sdk", "version": "5.0.0"},
		"pack.b": {"kind": "library", "version": "5.0.1"}
	}
}`

func TestRunShow(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	f.AddManifest(f.InstallRoot(), "8.0.200", "microsoft.net.workload.wasm", showManifest)

	out := execute(t, append(sdkArgs(f), "show", "microsoft.net.workload.wasm")...)

	for _, want := range []string{
		"Manifest:  microsoft.net.workload.wasm",
		"Version:   5.0.0",
		"wasm-tools",
		"pack.a",
		"microsoft.net.workload.emscripten",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunShow_caseInsensitive(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	f.AddManifest(f.InstallRoot(), "8.0.200", "Alpha", "")

	out := execute(t, append(sdkArgs(f), "show", "ALPHA")...)

	if !strings.Contains(out, "Manifest:  Alpha") {
		t.Errorf("expected on-disk id in output:\n%s", out)
	}
}

func TestRunShow_locale(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	dir := f.AddManifest(f.InstallRoot(), "8.0.200", "alpha", "")
	f.AddCatalog(dir, "pt-BR")

	out := execute(t, append(sdkArgs(f), "show", "alpha", "--locale", "pt-BR")...)
	if !strings.Contains(out, "Localization (pt-BR):") || !strings.Contains(out, "WorkloadManifest.pt-BR.json") {
		t.Errorf("expected catalog path in output:\n%s", out)
	}

	out = execute(t, append(sdkArgs(f), "show", "alpha", "--locale", "ja")...)
	if !strings.Contains(out, "no catalog") {
		t.Errorf("expected missing-catalog notice:\n%s", out)
	}
}

func TestRunShow_notInstalled(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append(sdkArgs(f), "show", "ghost"))
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for unknown manifest")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the manifest: %v", err)
	}
}
