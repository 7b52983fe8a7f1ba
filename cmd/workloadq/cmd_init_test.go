package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/workloadq/internal/config"
	"github.com/fbkclanna/workloadq/internal/install"
	"github.com/fbkclanna/workloadq/internal/testutil"
)

func TestRunInit(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	extra := f.ExtraRoot()

	out := execute(t, append(sdkArgs(f),
		"init",
		"--manifest-root", extra,
		"--outdated", "legacy.manifest",
	)...)

	configPath := filepath.Join(f.SdkRoot, install.ConfigFileName)
	if !strings.Contains(out, configPath) {
		t.Errorf("expected config path in output:\n%s", out)
	}

	cf, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cf.Version != 1 {
		t.Errorf("version = %d, want 1", cf.Version)
	}
	if len(cf.Roots) != 1 || cf.Roots[0] != extra {
		t.Errorf("roots = %v, want [%s]", cf.Roots, extra)
	}
	if len(cf.Outdated) != 1 || cf.Outdated[0] != "legacy.manifest" {
		t.Errorf("outdated = %v", cf.Outdated)
	}
}

func TestRunInit_existingWithoutForce(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	execute(t, append(sdkArgs(f), "init")...)

	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append(sdkArgs(f), "init"))
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error should suggest --force: %v", err)
	}
}

func TestRunInit_forceOverwrites(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	execute(t, append(sdkArgs(f), "init", "--outdated", "old.one")...)
	execute(t, append(sdkArgs(f), "init", "--force", "--ignore-default-roots")...)

	cf, err := config.Load(filepath.Join(f.SdkRoot, install.ConfigFileName))
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if !cf.IgnoreDefaultRoots {
		t.Error("expected ignore_default_roots after overwrite")
	}
	if len(cf.Outdated) != 0 {
		t.Errorf("outdated should be reset, got %v", cf.Outdated)
	}
}

func TestRunInit_configDrivesResolution(t *testing.T) {
	f := testutil.NewSDK(t, "8.0.203")
	extra := f.ExtraRoot()
	dir := f.AddManifest(extra, "8.0.200", "alpha", "")
	f.AddManifest(f.InstallRoot(), "8.0.200", "alpha", "")

	execute(t, append(sdkArgs(f), "init", "--manifest-root", extra)...)

	out := execute(t, append(sdkArgs(f), "resolve")...)
	if got := strings.TrimSpace(out); got != dir {
		t.Errorf("resolved %q, want config-root dir %q", got, dir)
	}
}
