package main

import (
	"encoding/json"
	"testing"

	"github.com/fbkclanna/workloadq/internal/resolver"
	"github.com/fbkclanna/workloadq/internal/testutil"
)

func TestRunRoots_json(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")

	out := execute(t, append(sdkArgs(f), "roots", "--json")...)

	var roots []resolver.Root
	if err := json.Unmarshal([]byte(out), &roots); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d: %+v", len(roots), roots)
	}
	if roots[0].Origin != "install" {
		t.Errorf("origin = %q, want install", roots[0].Origin)
	}
	if roots[0].Path != f.InstallRoot() {
		t.Errorf("path = %q, want %q", roots[0].Path, f.InstallRoot())
	}
}

func TestRunRoots_userRootListed(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	f.MarkUserLocal("8.0.200")
	f.UserRoot()

	out := execute(t, append(sdkArgs(f), "roots", "--json")...)

	var roots []resolver.Root
	if err := json.Unmarshal([]byte(out), &roots); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d: %+v", len(roots), roots)
	}
	if roots[0].Origin != "user" || roots[1].Origin != "install" {
		t.Errorf("unexpected origins: %+v", roots)
	}
}
